package v2

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
)

// Session wraps a gocql v2 session.
type Session struct {
	session *gocql.Session
}

// NewSession creates a new v2 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession that wraps a gocql v2 session.
//
// This is useful for migrating existing gocql code.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	tmpl, _ := cassandra.NewTemplate(v2.WrapSession(session))
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - cql.Session: An adapter implementing cql.Session interface
func WrapSession(session *gocql.Session) cql.Session {
	return NewSession(session)
}

// Query creates a new query for the given statement.
//
// Parameters:
//   - stmt: CQL statement with ? placeholders
//   - values: Values to bind to placeholders
//
// Returns:
//   - cql.Query: A query builder
func (s *Session) Query(stmt string, values ...any) cql.Query {
	return &Query{
		query:     s.session.Query(stmt, values...),
		statement: stmt,
		values:    values,
	}
}

// Prepare prepares a statement for repeated execution.
//
// Like v1, the v2 driver prepares lazily on first execution and caches per
// connection; the returned handle defers to that cache.
func (s *Session) Prepare(ctx context.Context, stmt string) (cql.PreparedStatement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &PreparedStatement{session: s.session, statement: stmt}, nil
}

// Close terminates the session.
func (s *Session) Close() {
	s.session.Close()
}

// PreparedStatement wraps a statement handle bound to a gocql v2 session.
type PreparedStatement struct {
	session   *gocql.Session
	statement string
}

// Bind binds values to the statement's placeholders and returns a query.
func (p *PreparedStatement) Bind(values ...any) cql.Query {
	return &Query{
		query:     p.session.Query(p.statement, values...),
		statement: p.statement,
		values:    values,
	}
}

// Statement returns the CQL statement the handle was prepared from.
func (p *PreparedStatement) Statement() string {
	return p.statement
}

// Query wraps a gocql v2 query.
type Query struct {
	query     *gocql.Query
	statement string
	values    []any
}

// Consistency sets the consistency level.
func (q *Query) Consistency(c cql.Consistency) cql.Query {
	q.query = q.query.Consistency(gocql.Consistency(c))

	return q
}

// SerialConsistency sets the consistency level for the serial phase of CAS
// operations. In the v2 driver serial consistency is a plain Consistency.
func (q *Query) SerialConsistency(c cql.Consistency) cql.Query {
	q.query = q.query.SerialConsistency(gocql.Consistency(c))

	return q
}

// PageSize sets the page size.
func (q *Query) PageSize(n int) cql.Query {
	q.query = q.query.PageSize(n)

	return q
}

// PageState sets the pagination state.
func (q *Query) PageState(state []byte) cql.Query {
	q.query = q.query.PageState(state)

	return q
}

// RetryPolicy sets the driver retry policy.
//
// The policy must implement gocql.RetryPolicy from the v2 driver; other
// values are ignored.
func (q *Query) RetryPolicy(policy any) cql.Query {
	if rp, ok := policy.(gocql.RetryPolicy); ok {
		q.query = q.query.RetryPolicy(rp)
	}

	return q
}

// Idempotent marks the query as safe to retry.
func (q *Query) Idempotent(idempotent bool) cql.Query {
	q.query = q.query.Idempotent(idempotent)

	return q
}

// WithTimestamp sets the write timestamp.
func (q *Query) WithTimestamp(ts int64) cql.Query {
	q.query = q.query.WithTimestamp(ts)

	return q
}

// ExecContext executes the query.
func (q *Query) ExecContext(ctx context.Context) error {
	return q.query.ExecContext(ctx)
}

// ScanContext executes and scans a single row.
func (q *Query) ScanContext(ctx context.Context, dest ...any) error {
	return q.query.ScanContext(ctx, dest...)
}

// MapScanContext executes and scans a single row into a map.
func (q *Query) MapScanContext(ctx context.Context, m map[string]any) error {
	return q.query.MapScanContext(ctx, m)
}

// IterContext returns an iterator for results.
func (q *Query) IterContext(ctx context.Context) cql.Iter {
	return &Iter{iter: q.query.IterContext(ctx)}
}

// ScanCASContext executes a lightweight transaction and scans the result.
func (q *Query) ScanCASContext(ctx context.Context, dest ...any) (applied bool, err error) {
	return q.query.ScanCASContext(ctx, dest...)
}

// MapScanCASContext executes a lightweight transaction and scans into a map.
func (q *Query) MapScanCASContext(ctx context.Context, dest map[string]any) (applied bool, err error) {
	return q.query.MapScanCASContext(ctx, dest)
}

// Statement returns the CQL statement.
func (q *Query) Statement() string {
	return q.statement
}

// Values returns the bound values.
func (q *Query) Values() []any {
	return q.values
}

// Release is a no-op for v2 as it doesn't have query pooling.
func (q *Query) Release() {
	// v2 driver doesn't have Release method - no-op
}

// Iter wraps a gocql v2 iterator.
type Iter struct {
	iter *gocql.Iter
}

// Scan reads the next row.
func (i *Iter) Scan(dest ...any) bool {
	return i.iter.Scan(dest...)
}

// MapScan reads the next row into a map.
func (i *Iter) MapScan(m map[string]any) bool {
	return i.iter.MapScan(m)
}

// SliceMap reads all rows into a slice of maps.
func (i *Iter) SliceMap() ([]map[string]any, error) {
	return i.iter.SliceMap()
}

// PageState returns the pagination token.
func (i *Iter) PageState() []byte {
	return i.iter.PageState()
}

// NumRows returns the number of rows in the current page.
func (i *Iter) NumRows() int {
	return i.iter.NumRows()
}

// Columns returns metadata about the columns in the result set.
func (i *Iter) Columns() []cql.ColumnInfo {
	gocqlCols := i.iter.Columns()
	result := make([]cql.ColumnInfo, len(gocqlCols))
	for idx, col := range gocqlCols {
		result[idx] = cql.ColumnInfo{
			Keyspace: col.Keyspace,
			Table:    col.Table,
			Name:     col.Name,
			TypeInfo: col.TypeInfo,
		}
	}

	return result
}

// Scanner returns a database/sql-style scanner for the iterator.
func (i *Iter) Scanner() cql.Scanner {
	return &scanner{scanner: i.iter.Scanner()}
}

// Warnings returns any warnings from the Cassandra server.
func (i *Iter) Warnings() []string {
	return i.iter.Warnings()
}

// Close closes the iterator.
func (i *Iter) Close() error {
	return i.iter.Close()
}

// scanner wraps the v2 driver's scanner.
type scanner struct {
	scanner gocql.Scanner
}

// Next advances to the next row.
func (s *scanner) Next() bool {
	return s.scanner.Next()
}

// Scan reads the current row into dest.
func (s *scanner) Scan(dest ...any) error {
	return s.scanner.Scan(dest...)
}

// Err returns any error from iteration and releases resources.
func (s *scanner) Err() error {
	return s.scanner.Err()
}
