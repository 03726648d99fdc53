package types

// Logger is the logging interface used throughout the library.
//
// Methods accept a message followed by alternating key/value pairs, matching
// zap.SugaredLogger so a sugared zap logger satisfies this interface directly.
// When no logger is configured, a no-op implementation is used.
type Logger interface {
	// Debug logs a debug-level message with optional key/value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info-level message with optional key/value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning-level message with optional key/value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error-level message with optional key/value pairs.
	Error(msg string, keysAndValues ...any)
}
