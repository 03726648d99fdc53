package cassandra

import (
	"context"
	"time"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
	"github.com/dileepthomas86/spring-data-cassandra/internal/logging"
	"github.com/dileepthomas86/spring-data-cassandra/internal/metrics"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// Template is the central class for CQL data access. It executes statements
// against a session, applies configured defaults without overriding explicit
// statement settings, and funnels every driver error through the error
// translation hook so callers deal with *types.DataAccessError values.
//
// # Thread Safety
//
// Template is safe for concurrent use once constructed. A single instance
// can be shared across your application:
//
//	tmpl, err := cassandra.NewTemplate(session, opts...)
//
//	go func() { tmpl.Execute(ctx, "INSERT ...", args...) }()
//	go func() { tmpl.QueryForMap(ctx, "SELECT ...", id) }()
type Template struct {
	factory SessionFactory
	config  *Config
	cache   *statementCache
}

// NewTemplate creates a template executing against the given session.
//
// Parameters:
//   - session: The CQL session to execute against (required)
//   - opts: Optional configuration options
//
// Returns:
//   - *Template: A new template
//   - error: types.ErrNilSession if session is nil
func NewTemplate(session cql.Session, opts ...Option) (*Template, error) {
	if session == nil {
		return nil, types.ErrNilSession
	}

	return NewTemplateWithFactory(NewSessionFactory(session), opts...)
}

// NewTemplateWithFactory creates a template obtaining its session from the
// given factory on every operation.
//
// Parameters:
//   - factory: The session factory (required, must supply a non-nil session)
//   - opts: Optional configuration options
//
// Returns:
//   - *Template: A new template
//   - error: types.ErrNilSession if the factory or its session is nil
func NewTemplateWithFactory(factory SessionFactory, opts ...Option) (*Template, error) {
	if factory == nil || factory.Session() == nil {
		return nil, types.ErrNilSession
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	// Ensure collaborators are never nil
	if config.Logger == nil {
		config.Logger = logging.NewNopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NewNopMetrics()
	}
	if config.Translator == nil {
		config.Translator = types.ErrorTranslatorFunc(func(error) error { return nil })
	}
	if config.Keyspace == "" {
		config.Keyspace = DefaultKeyspaceLabel
	}

	t := &Template{factory: factory, config: config}
	if config.CacheStatements {
		t.cache = newStatementCache(config.Metrics, config.Keyspace)
	}

	return t, nil
}

// Session returns the session the template currently executes against.
func (t *Template) Session() cql.Session {
	return t.factory.Session()
}

// Execute executes a statement without reading results.
//
// Parameters:
//   - ctx: Context for the execution
//   - stmt: CQL statement with ? placeholders
//   - args: Values to bind to placeholders
//
// Returns:
//   - error: types.ErrEmptyCQL on an empty statement, a *types.DataAccessError
//     on driver failure, nil on success
func (t *Template) Execute(ctx context.Context, stmt string, args ...any) error {
	if stmt == "" {
		return types.ErrEmptyCQL
	}

	return t.ExecuteStatement(ctx, NewStatement(stmt, args...))
}

// ExecuteStatement executes a statement carrying explicit settings.
//
// Template defaults are applied only to settings the statement does not
// carry; explicit values on the statement always win.
//
// Parameters:
//   - ctx: Context for the execution
//   - stmt: The statement to execute
//
// Returns:
//   - error: Precondition sentinel, translated driver error, or nil
func (t *Template) ExecuteStatement(ctx context.Context, stmt *Statement) error {
	if stmt == nil {
		return types.ErrNilArgument
	}
	if stmt.cql == "" {
		return types.ErrEmptyCQL
	}

	t.config.Logger.Debug("executing statement", "cql", stmt.cql)
	t.config.Metrics.IncExecuteTotal(t.config.Keyspace)

	start := time.Now()
	q := t.applySettings(t.Session().Query(stmt.cql, stmt.args...), stmt)
	err := q.ExecContext(ctx)
	q.Release()
	t.config.Metrics.ObserveExecuteDuration(t.config.Keyspace, time.Since(start).Seconds())

	if err != nil {
		t.config.Metrics.IncExecuteError(t.config.Keyspace)
		return t.translate("Execute", stmt.cql, err)
	}

	return nil
}

// ExecuteCAS executes a lightweight transaction (IF clause) and reports
// whether it was applied.
//
// Non-conditional statements executed via Execute are always applied when
// they return no error; only conditional statements carry an [applied]
// column, which this method surfaces.
//
// Parameters:
//   - ctx: Context for the execution
//   - stmt: Conditional CQL statement with ? placeholders
//   - args: Values to bind to placeholders
//
// Returns:
//   - bool: true if the transaction was applied
//   - error: Precondition sentinel, translated driver error, or nil
func (t *Template) ExecuteCAS(ctx context.Context, stmt string, args ...any) (bool, error) {
	return t.ExecuteCASStatement(ctx, NewStatement(stmt, args...))
}

// ExecuteCASStatement is the Statement-carrying variant of ExecuteCAS.
func (t *Template) ExecuteCASStatement(ctx context.Context, stmt *Statement) (bool, error) {
	if stmt == nil {
		return false, types.ErrNilArgument
	}
	if stmt.cql == "" {
		return false, types.ErrEmptyCQL
	}

	t.config.Logger.Debug("executing conditional statement", "cql", stmt.cql)
	t.config.Metrics.IncExecuteTotal(t.config.Keyspace)

	start := time.Now()
	q := t.applySettings(t.Session().Query(stmt.cql, stmt.args...), stmt)
	applied, err := q.MapScanCASContext(ctx, map[string]any{})
	q.Release()
	t.config.Metrics.ObserveExecuteDuration(t.config.Keyspace, time.Since(start).Seconds())

	if err != nil {
		t.config.Metrics.IncExecuteError(t.config.Keyspace)
		return false, t.translate("ExecuteCAS", stmt.cql, err)
	}

	return applied, nil
}

// QueryForMap executes a query expected to return exactly one row and
// returns it as a column name to value map.
//
// Parameters:
//   - ctx: Context for the query
//   - stmt: CQL statement with ? placeholders
//   - args: Values to bind to placeholders
//
// Returns:
//   - map[string]any: The single result row
//   - error: types.ErrNoResults on zero rows, types.ErrTooManyResults on
//     more than one, translated driver error otherwise
func (t *Template) QueryForMap(ctx context.Context, stmt string, args ...any) (map[string]any, error) {
	if stmt == "" {
		return nil, types.ErrEmptyCQL
	}

	t.config.Logger.Debug("executing query", "cql", stmt)
	t.config.Metrics.IncQueryTotal(t.config.Keyspace)

	start := time.Now()
	// Fetching two rows is enough to detect a violated single-row expectation.
	q := t.applySettings(t.Session().Query(stmt, args...), NewStatement(stmt).WithPageSize(2))
	iter := q.IterContext(ctx)

	row := map[string]any{}
	if !iter.MapScan(row) {
		err := iter.Close()
		q.Release()
		t.observeQuery(start, err)
		if err != nil {
			return nil, t.translate("QueryForMap", stmt, err)
		}

		return nil, types.ErrNoResults
	}

	extra := map[string]any{}
	more := iter.MapScan(extra)
	err := iter.Close()
	q.Release()
	t.observeQuery(start, err)

	if err != nil {
		return nil, t.translate("QueryForMap", stmt, err)
	}
	if more {
		return nil, types.ErrTooManyResults
	}

	return row, nil
}

// QueryForSlice executes a query and returns all rows as column name to
// value maps.
//
// All rows are buffered in memory; prefer QueryRows for large result sets.
//
// Parameters:
//   - ctx: Context for the query
//   - stmt: CQL statement with ? placeholders
//   - args: Values to bind to placeholders
//
// Returns:
//   - []map[string]any: The result rows, empty when none matched
//   - error: Precondition sentinel, translated driver error, or nil
func (t *Template) QueryForSlice(ctx context.Context, stmt string, args ...any) ([]map[string]any, error) {
	if stmt == "" {
		return nil, types.ErrEmptyCQL
	}

	t.config.Logger.Debug("executing query", "cql", stmt)
	t.config.Metrics.IncQueryTotal(t.config.Keyspace)

	start := time.Now()
	q := t.applySettings(t.Session().Query(stmt, args...), nil)
	iter := q.IterContext(ctx)

	rows, err := iter.SliceMap()
	if closeErr := iter.Close(); err == nil {
		err = closeErr
	}
	q.Release()
	t.observeQuery(start, err)

	if err != nil {
		return nil, t.translate("QueryForSlice", stmt, err)
	}

	return rows, nil
}

// QueryRows executes a query and returns a cursor over its rows.
//
// The caller must exhaust or Close the returned Rows to release resources.
//
// Parameters:
//   - ctx: Context for the query
//   - stmt: CQL statement with ? placeholders
//   - args: Values to bind to placeholders
//
// Returns:
//   - *Rows: A cursor over the result rows
//   - error: Precondition sentinel, or nil
func (t *Template) QueryRows(ctx context.Context, stmt string, args ...any) (*Rows, error) {
	return t.QueryRowsStatement(ctx, NewStatement(stmt, args...))
}

// QueryRowsStatement is the Statement-carrying variant of QueryRows.
func (t *Template) QueryRowsStatement(ctx context.Context, stmt *Statement) (*Rows, error) {
	if stmt == nil {
		return nil, types.ErrNilArgument
	}
	if stmt.cql == "" {
		return nil, types.ErrEmptyCQL
	}

	t.config.Logger.Debug("executing query", "cql", stmt.cql)
	t.config.Metrics.IncQueryTotal(t.config.Keyspace)

	start := time.Now()
	q := t.applySettings(t.Session().Query(stmt.cql, stmt.args...), stmt)
	iter := q.IterContext(ctx)

	return &Rows{
		iter:    iter,
		scanner: iter.Scanner(),
		query:   q,
		started: start,
		onClose: t.observeQuery,
		translate: func(err error) error {
			return t.translate("QueryRows", stmt.cql, err)
		},
	}, nil
}

// observeQuery records query duration and error metrics.
func (t *Template) observeQuery(start time.Time, err error) {
	t.config.Metrics.ObserveQueryDuration(t.config.Keyspace, time.Since(start).Seconds())
	if err != nil {
		t.config.Metrics.IncQueryError(t.config.Keyspace)
	}
}

// applySettings copies statement settings onto the query, then fills in
// template defaults for whatever the statement left unset. A nil statement
// applies defaults only.
func (t *Template) applySettings(q cql.Query, stmt *Statement) cql.Query {
	cfg := t.config

	var (
		consistency       = cfg.Consistency
		serialConsistency = cfg.SerialConsistency
		retryPolicy       = cfg.RetryPolicy
		pageSize          = 0
	)
	if cfg.PageSize > 0 {
		pageSize = cfg.PageSize
	}

	if stmt != nil {
		if stmt.consistency != nil {
			consistency = stmt.consistency
		}
		if stmt.serialConsistency != nil {
			serialConsistency = stmt.serialConsistency
		}
		if stmt.retryPolicy != nil {
			retryPolicy = stmt.retryPolicy
		}
		if stmt.pageSize != nil {
			pageSize = *stmt.pageSize
		}
		if stmt.pageState != nil {
			q = q.PageState(stmt.pageState)
		}
		if stmt.idempotent != nil {
			q = q.Idempotent(*stmt.idempotent)
		}
		if stmt.timestamp != nil {
			q = q.WithTimestamp(*stmt.timestamp)
		}
	}

	if consistency != nil {
		q = q.Consistency(*consistency)
	}
	if serialConsistency != nil {
		q = q.SerialConsistency(*serialConsistency)
	}
	if retryPolicy != nil {
		q = q.RetryPolicy(retryPolicy)
	}
	if pageSize > 0 {
		q = q.PageSize(pageSize)
	}

	return q
}

// translate wraps a driver error into a *types.DataAccessError carrying the
// task, the CQL involved, and the category matched by the configured
// translator.
func (t *Template) translate(task, cqlText string, err error) error {
	if err == nil {
		return nil
	}

	return &types.DataAccessError{
		Task:     task,
		CQL:      cqlText,
		Category: t.config.Translator.Translate(err),
		Cause:    err,
	}
}

// prepare returns a prepared statement handle, consulting the cache when
// enabled.
func (t *Template) prepare(ctx context.Context, stmt string) (cql.PreparedStatement, error) {
	if t.cache != nil {
		return t.cache.prepare(ctx, t.Session(), stmt)
	}

	return t.Session().Prepare(ctx, stmt)
}
