package cassandra

import (
	"github.com/dileepthomas86/spring-data-cassandra/internal/logging"
	"github.com/dileepthomas86/spring-data-cassandra/internal/metrics"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// DefaultPageSize leaves the page size to the driver default.
const DefaultPageSize = -1

// DefaultKeyspaceLabel is the metrics label used when no keyspace is configured.
const DefaultKeyspaceLabel = "default"

// Config holds configuration for a Template.
//
// Zero values mean "leave the driver default": a nil Consistency pointer,
// a non-positive PageSize, and a nil RetryPolicy are never applied to
// outgoing queries.
type Config struct {
	Consistency       *types.Consistency
	SerialConsistency *types.Consistency
	PageSize          int
	RetryPolicy       any
	Keyspace          string
	Logger            types.Logger
	Metrics           types.MetricsCollector
	Translator        types.ErrorTranslator
	CacheStatements   bool
}

// DefaultConfig returns a Config with sensible defaults.
//
// Defaults:
//   - Consistency, SerialConsistency, RetryPolicy: unset (driver defaults)
//   - PageSize: DefaultPageSize (driver default)
//   - Keyspace: "default" (metrics label only)
//   - Logger, Metrics: no-op implementations
//   - Translator: pass-through (errors are wrapped but uncategorized)
//   - CacheStatements: true
//
// Returns:
//   - *Config: Configuration with default settings
func DefaultConfig() *Config {
	return &Config{
		PageSize:        DefaultPageSize,
		Keyspace:        DefaultKeyspaceLabel,
		Logger:          logging.NewNopLogger(),
		Metrics:         metrics.NewNopMetrics(),
		Translator:      types.ErrorTranslatorFunc(func(error) error { return nil }),
		CacheStatements: true,
	}
}

// Option configures a Config.
type Option func(*Config)

// WithConsistency sets the default consistency level applied to statements
// that do not carry an explicit one.
//
// Parameters:
//   - c: The consistency level to use
//
// Returns:
//   - Option: Configuration option
func WithConsistency(c types.Consistency) Option {
	return func(cfg *Config) {
		cfg.Consistency = &c
	}
}

// WithSerialConsistency sets the default serial consistency level for
// lightweight transactions. Valid values are Serial or LocalSerial.
//
// Parameters:
//   - c: The serial consistency level to use
//
// Returns:
//   - Option: Configuration option
func WithSerialConsistency(c types.Consistency) Option {
	return func(cfg *Config) {
		cfg.SerialConsistency = &c
	}
}

// WithPageSize sets the default page size applied to statements that do not
// carry an explicit one. Non-positive values leave the driver default.
//
// Parameters:
//   - n: Page size in rows
//
// Returns:
//   - Option: Configuration option
func WithPageSize(n int) Option {
	return func(cfg *Config) {
		cfg.PageSize = n
	}
}

// WithRetryPolicy sets the default driver retry policy applied to statements
// that do not carry an explicit one. The concrete type belongs to the wrapped
// driver, e.g. gocql.RetryPolicy for the v1 adapter.
//
// Parameters:
//   - policy: The driver retry policy
//
// Returns:
//   - Option: Configuration option
func WithRetryPolicy(policy any) Option {
	return func(cfg *Config) {
		cfg.RetryPolicy = policy
	}
}

// WithKeyspace sets the keyspace label used in metrics and log messages.
//
// This does not switch the session's keyspace; configure that on the driver
// cluster config.
//
// Parameters:
//   - keyspace: The keyspace label
//
// Returns:
//   - Option: Configuration option
func WithKeyspace(keyspace string) Option {
	return func(cfg *Config) {
		if keyspace != "" {
			cfg.Keyspace = keyspace
		}
	}
}

// WithLogger sets the logger for template operations.
//
// Parameters:
//   - logger: The logger to use
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithMetrics sets the metrics collector for template operations.
//
// Parameters:
//   - collector: The metrics collector to use
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(cfg *Config) {
		cfg.Metrics = collector
	}
}

// WithErrorTranslator sets the translator that maps driver errors to error
// category sentinels. Adapters provide one for their driver, e.g.
// v1.ErrorTranslator().
//
// Parameters:
//   - translator: The error translator to use
//
// Returns:
//   - Option: Configuration option
func WithErrorTranslator(translator types.ErrorTranslator) Option {
	return func(cfg *Config) {
		cfg.Translator = translator
	}
}

// WithStatementCache enables or disables the prepared-statement cache used
// by the streaming and repository bulk paths. Enabled by default.
//
// Parameters:
//   - enabled: Whether to cache prepared statements
//
// Returns:
//   - Option: Configuration option
func WithStatementCache(enabled bool) Option {
	return func(cfg *Config) {
		cfg.CacheStatements = enabled
	}
}
