package testutil

import (
	"context"
	"reflect"
	"sync"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
)

// Execution records one executed statement and its bound values.
type Execution struct {
	Statement string
	Values    []any
}

// MockSession is a mock implementation of cql.Session for testing.
//
// Configure canned result rows and errors per statement, then assert on the
// recorded executions and on the settings applied to individual queries.
type MockSession struct {
	mu         sync.Mutex
	executions []Execution
	prepared   []string
	queries    map[string]*MockQuery
	rows       map[string][][]any
	mapRows    map[string][]map[string]any
	columns    map[string][]string
	errs       map[string]error
	closed     bool

	// CASApplied is returned by CAS executions. Defaults to false.
	CASApplied bool

	// PrepareErr is returned by Prepare when set.
	PrepareErr error

	// OnQuery, when set, is invoked for every created query.
	OnQuery func(stmt string, values []any)
}

// Compile-time assertion that MockSession implements cql.Session.
var _ cql.Session = (*MockSession)(nil)

// NewMockSession creates a new mock session.
func NewMockSession() *MockSession {
	return &MockSession{
		queries: make(map[string]*MockQuery),
		rows:    make(map[string][][]any),
		mapRows: make(map[string][]map[string]any),
		columns: make(map[string][]string),
		errs:    make(map[string]error),
	}
}

// SetRows configures the positional rows returned for the given statement.
func (m *MockSession) SetRows(stmt string, rows [][]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[stmt] = rows
}

// SetMapRows configures the map rows returned for the given statement.
func (m *MockSession) SetMapRows(stmt string, rows []map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mapRows[stmt] = rows
}

// SetColumns configures the result column names for the given statement.
func (m *MockSession) SetColumns(stmt string, names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.columns[stmt] = names
}

// SetError configures the error returned when executing the given statement.
func (m *MockSession) SetError(stmt string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[stmt] = err
}

// Executions returns all recorded executions in order.
func (m *MockSession) Executions() []Execution {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Execution, len(m.executions))
	copy(out, m.executions)

	return out
}

// ExecutionCount returns the number of recorded executions.
func (m *MockSession) ExecutionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.executions)
}

// Prepared returns the statements prepared on this session, in order.
func (m *MockSession) Prepared() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.prepared))
	copy(out, m.prepared)

	return out
}

// LastQuery returns the most recent query created for the given statement,
// or nil when none was created.
func (m *MockSession) LastQuery(stmt string) *MockQuery {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.queries[stmt]
}

// IsClosed returns whether the session has been closed.
func (m *MockSession) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closed
}

// Query returns a mock query for the given statement.
func (m *MockSession) Query(stmt string, values ...any) cql.Query {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.OnQuery != nil {
		m.OnQuery(stmt, values)
	}

	q := &MockQuery{session: m, stmt: stmt, values: values}
	m.queries[stmt] = q

	return q
}

// Prepare records the statement and returns a handle binding through this
// session.
func (m *MockSession) Prepare(_ context.Context, stmt string) (cql.PreparedStatement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PrepareErr != nil {
		return nil, m.PrepareErr
	}
	m.prepared = append(m.prepared, stmt)

	return &mockPrepared{session: m, stmt: stmt}, nil
}

// Close marks the session as closed.
func (m *MockSession) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// record appends an execution under the session lock.
func (m *MockSession) record(stmt string, values []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executions = append(m.executions, Execution{Statement: stmt, Values: values})
}

// result returns the canned rows, map rows, columns, and error for stmt.
func (m *MockSession) result(stmt string) ([][]any, []map[string]any, []string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.rows[stmt], m.mapRows[stmt], m.columns[stmt], m.errs[stmt]
}

// mockPrepared is a prepared statement handle over a MockSession.
type mockPrepared struct {
	session *MockSession
	stmt    string
}

func (p *mockPrepared) Bind(values ...any) cql.Query {
	return p.session.Query(p.stmt, values...).(*MockQuery)
}

func (p *mockPrepared) Statement() string {
	return p.stmt
}

// MockQuery is a mock implementation of cql.Query recording every setting
// applied to it.
type MockQuery struct {
	session *MockSession
	stmt    string
	values  []any

	// Settings applied via the chainable methods, nil when never set.
	AppliedConsistency       *cql.Consistency
	AppliedSerialConsistency *cql.Consistency
	AppliedPageSize          *int
	AppliedPageState         []byte
	AppliedRetryPolicy       any
	AppliedIdempotent        *bool
	AppliedTimestamp         *int64
	Released                 bool
}

// Compile-time assertion that MockQuery implements cql.Query.
var _ cql.Query = (*MockQuery)(nil)

func (q *MockQuery) Consistency(c cql.Consistency) cql.Query {
	q.AppliedConsistency = &c
	return q
}

func (q *MockQuery) SerialConsistency(c cql.Consistency) cql.Query {
	q.AppliedSerialConsistency = &c
	return q
}

func (q *MockQuery) PageSize(n int) cql.Query {
	q.AppliedPageSize = &n
	return q
}

func (q *MockQuery) PageState(state []byte) cql.Query {
	q.AppliedPageState = state
	return q
}

func (q *MockQuery) RetryPolicy(policy any) cql.Query {
	q.AppliedRetryPolicy = policy
	return q
}

func (q *MockQuery) Idempotent(idempotent bool) cql.Query {
	q.AppliedIdempotent = &idempotent
	return q
}

func (q *MockQuery) WithTimestamp(ts int64) cql.Query {
	q.AppliedTimestamp = &ts
	return q
}

func (q *MockQuery) ExecContext(_ context.Context) error {
	q.session.record(q.stmt, q.values)
	_, _, _, err := q.session.result(q.stmt)

	return err
}

func (q *MockQuery) ScanContext(_ context.Context, dest ...any) error {
	q.session.record(q.stmt, q.values)
	rows, _, _, err := q.session.result(q.stmt)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrMockNotFound
	}

	return assignRow(rows[0], dest)
}

func (q *MockQuery) MapScanContext(_ context.Context, m map[string]any) error {
	q.session.record(q.stmt, q.values)
	_, mapRows, _, err := q.session.result(q.stmt)
	if err != nil {
		return err
	}
	if len(mapRows) == 0 {
		return ErrMockNotFound
	}
	for k, v := range mapRows[0] {
		m[k] = v
	}

	return nil
}

func (q *MockQuery) IterContext(_ context.Context) cql.Iter {
	q.session.record(q.stmt, q.values)
	rows, mapRows, columns, err := q.session.result(q.stmt)

	return &MockIter{rows: rows, mapRows: mapRows, columns: columns, err: err}
}

func (q *MockQuery) ScanCASContext(_ context.Context, dest ...any) (bool, error) {
	q.session.record(q.stmt, q.values)
	rows, _, _, err := q.session.result(q.stmt)
	if err != nil {
		return false, err
	}
	if len(rows) > 0 {
		if assignErr := assignRow(rows[0], dest); assignErr != nil {
			return false, assignErr
		}
	}

	return q.session.CASApplied, nil
}

func (q *MockQuery) MapScanCASContext(_ context.Context, dest map[string]any) (bool, error) {
	q.session.record(q.stmt, q.values)
	_, mapRows, _, err := q.session.result(q.stmt)
	if err != nil {
		return false, err
	}
	if len(mapRows) > 0 {
		for k, v := range mapRows[0] {
			dest[k] = v
		}
	}

	return q.session.CASApplied, nil
}

func (q *MockQuery) Statement() string {
	return q.stmt
}

func (q *MockQuery) Values() []any {
	return q.values
}

func (q *MockQuery) Release() {
	q.Released = true
}

// MockIter is a mock implementation of cql.Iter over canned rows.
type MockIter struct {
	rows    [][]any
	mapRows []map[string]any
	columns []string
	err     error
	pos     int
	mapPos  int
}

// Compile-time assertion that MockIter implements cql.Iter.
var _ cql.Iter = (*MockIter)(nil)

func (i *MockIter) Scan(dest ...any) bool {
	if i.err != nil || i.pos >= len(i.rows) {
		return false
	}
	if assignErr := assignRow(i.rows[i.pos], dest); assignErr != nil {
		i.err = assignErr
		return false
	}
	i.pos++

	return true
}

func (i *MockIter) MapScan(m map[string]any) bool {
	if i.err != nil || i.mapPos >= len(i.mapRows) {
		return false
	}
	for k, v := range i.mapRows[i.mapPos] {
		m[k] = v
	}
	i.mapPos++

	return true
}

func (i *MockIter) SliceMap() ([]map[string]any, error) {
	if i.err != nil {
		return nil, i.err
	}

	return i.mapRows, nil
}

func (i *MockIter) PageState() []byte {
	return nil
}

func (i *MockIter) NumRows() int {
	if len(i.rows) > 0 {
		return len(i.rows)
	}

	return len(i.mapRows)
}

func (i *MockIter) Columns() []cql.ColumnInfo {
	cols := make([]cql.ColumnInfo, len(i.columns))
	for idx, name := range i.columns {
		cols[idx] = cql.ColumnInfo{Name: name}
	}

	return cols
}

func (i *MockIter) Scanner() cql.Scanner {
	return &mockScanner{iter: i, pos: -1}
}

func (i *MockIter) Warnings() []string {
	return nil
}

func (i *MockIter) Close() error {
	return i.err
}

// mockScanner scans MockIter rows database/sql style.
type mockScanner struct {
	iter *MockIter
	pos  int
}

func (s *mockScanner) Next() bool {
	if s.iter.err != nil {
		return false
	}
	if s.pos+1 >= len(s.iter.rows) {
		return false
	}
	s.pos++

	return true
}

func (s *mockScanner) Scan(dest ...any) error {
	if s.pos < 0 || s.pos >= len(s.iter.rows) {
		return ErrMockNotFound
	}

	return assignRow(s.iter.rows[s.pos], dest)
}

func (s *mockScanner) Err() error {
	return s.iter.err
}

// assignRow copies row values into scan destinations via reflection.
func assignRow(row []any, dest []any) error {
	if len(row) != len(dest) {
		return ErrMockColumnCount
	}
	for i, v := range row {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v))
	}

	return nil
}
