package v1

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
)

// Session wraps a gocql v1 session.
type Session struct {
	session *gocql.Session
}

// NewSession creates a new v1 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession that wraps a gocql v1 session.
//
// This is useful for migrating existing gocql code.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	tmpl, _ := cassandra.NewTemplate(v1.WrapSession(session))
//
// Parameters:
//   - session: A gocql.Session instance
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
// gocql v1 prepares lazily on first execution and caches per connection, so
// the returned handle carries no server-side state of its own; binding it
// routes through that cache.
//
// Parameters:
//   - ctx: Context for the preparation round trip
//   - stmt: CQL statement with ? placeholders
//
// Returns:
//   - cql.PreparedStatement: A handle that binds values into queries
//   - error: nil on success, error if the context is already done
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

// PreparedStatement wraps a statement handle bound to a gocql v1 session.
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

// Query wraps a gocql v1 query.
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
// operations. Valid values are Serial or LocalSerial.
func (q *Query) SerialConsistency(c cql.Consistency) cql.Query {
	q.query = q.query.SerialConsistency(gocql.SerialConsistency(c))
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
// The policy must implement gocql.RetryPolicy; other values are ignored.
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
	return q.query.WithContext(ctx).Exec()
}

// ScanContext executes and scans a single row.
func (q *Query) ScanContext(ctx context.Context, dest ...any) error {
	return q.query.WithContext(ctx).Scan(dest...)
}

// MapScanContext executes and scans a single row into a map.
func (q *Query) MapScanContext(ctx context.Context, m map[string]any) error {
	return q.query.WithContext(ctx).MapScan(m)
}

// IterContext returns an iterator for results.
func (q *Query) IterContext(ctx context.Context) cql.Iter {
	return &Iter{iter: q.query.WithContext(ctx).Iter()}
}

// ScanCASContext executes a lightweight transaction and scans the result.
// Returns applied=true if the transaction succeeded.
func (q *Query) ScanCASContext(ctx context.Context, dest ...any) (applied bool, err error) {
	return q.query.WithContext(ctx).ScanCAS(dest...)
}

// MapScanCASContext executes a lightweight transaction and scans into a map.
// Returns applied=true if the transaction succeeded.
func (q *Query) MapScanCASContext(ctx context.Context, dest map[string]any) (applied bool, err error) {
	return q.query.WithContext(ctx).MapScanCAS(dest)
}

// Statement returns the CQL statement.
func (q *Query) Statement() string {
	return q.statement
}

// Values returns the bound values.
func (q *Query) Values() []any {
	return q.values
}

// Release returns the query to the pool.
func (q *Query) Release() {
	q.query.Release()
}

// Iter wraps a gocql v1 iterator.
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
	cols := i.iter.Columns()
	result := make([]cql.ColumnInfo, len(cols))
	for idx, col := range cols {
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
	return i.iter.Scanner()
}

// Warnings returns any warnings from the Cassandra server.
func (i *Iter) Warnings() []string {
	return i.iter.Warnings()
}

// Close closes the iterator.
func (i *Iter) Close() error {
	return i.iter.Close()
}
