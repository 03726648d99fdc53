package cassandra

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dileepthomas86/spring-data-cassandra/test/testutil"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// recordingMetrics counts collector calls per method and keyspace.
type recordingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counts: make(map[string]int)}
}

func (m *recordingMetrics) inc(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
}

func (m *recordingMetrics) count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counts[key]
}

func (m *recordingMetrics) IncExecuteTotal(ks string)                  { m.inc("execute_total:" + ks) }
func (m *recordingMetrics) IncExecuteError(ks string)                  { m.inc("execute_error:" + ks) }
func (m *recordingMetrics) ObserveExecuteDuration(ks string, _ float64) { m.inc("execute_duration:" + ks) }
func (m *recordingMetrics) IncQueryTotal(ks string)                    { m.inc("query_total:" + ks) }
func (m *recordingMetrics) IncQueryError(ks string)                    { m.inc("query_error:" + ks) }
func (m *recordingMetrics) ObserveQueryDuration(ks string, _ float64)  { m.inc("query_duration:" + ks) }
func (m *recordingMetrics) IncStatementCacheHit(ks string)             { m.inc("cache_hit:" + ks) }
func (m *recordingMetrics) IncStatementCacheMiss(ks string)            { m.inc("cache_miss:" + ks) }

func TestNewTemplate_NilSession(t *testing.T) {
	_, err := NewTemplate(nil)
	require.ErrorIs(t, err, types.ErrNilSession)
}

func TestNewTemplateWithFactory_Nil(t *testing.T) {
	_, err := NewTemplateWithFactory(nil)
	require.ErrorIs(t, err, types.ErrNilSession)

	_, err = NewTemplateWithFactory(NewSessionFactory(nil))
	require.ErrorIs(t, err, types.ErrNilSession)
}

func TestExecute(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, err := NewTemplate(session)
	require.NoError(t, err)

	err = tmpl.Execute(context.Background(), "INSERT INTO users (id) VALUES (?)", 1)
	require.NoError(t, err)

	execs := session.Executions()
	require.Len(t, execs, 1)
	require.Equal(t, "INSERT INTO users (id) VALUES (?)", execs[0].Statement)
	require.Equal(t, []any{1}, execs[0].Values)
}

func TestExecute_EmptyCQL(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	err := tmpl.Execute(context.Background(), "")
	require.ErrorIs(t, err, types.ErrEmptyCQL)
	require.Zero(t, session.ExecutionCount())
}

func TestExecuteStatement_Nil(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	require.ErrorIs(t, tmpl.ExecuteStatement(context.Background(), nil), types.ErrNilArgument)
}

func TestExecute_TranslatesDriverError(t *testing.T) {
	session := testutil.NewMockSession()
	cause := errors.New("host unreachable")
	session.SetError("DROP TABLE users", cause)

	tmpl, _ := NewTemplate(session,
		WithErrorTranslator(types.ErrorTranslatorFunc(func(error) error {
			return types.ErrUnavailable
		})),
	)

	err := tmpl.Execute(context.Background(), "DROP TABLE users")
	require.Error(t, err)

	var dae *types.DataAccessError
	require.ErrorAs(t, err, &dae)
	require.Equal(t, "Execute", dae.Task)
	require.Equal(t, "DROP TABLE users", dae.CQL)
	require.ErrorIs(t, err, types.ErrUnavailable)
	require.ErrorIs(t, err, cause)
}

func TestExecuteCAS(t *testing.T) {
	session := testutil.NewMockSession()
	session.CASApplied = true
	stmt := "INSERT INTO users (id) VALUES (?) IF NOT EXISTS"
	session.SetMapRows(stmt, []map[string]any{{"[applied]": true}})

	tmpl, _ := NewTemplate(session)

	applied, err := tmpl.ExecuteCAS(context.Background(), stmt, 1)
	require.NoError(t, err)
	require.True(t, applied)

	session.CASApplied = false
	applied, err = tmpl.ExecuteCAS(context.Background(), stmt, 1)
	require.NoError(t, err)
	require.False(t, applied)
}

func TestQueryForMap(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT * FROM users WHERE id = ?"
	session.SetMapRows(stmt, []map[string]any{{"id": 1, "name": "ada"}})

	tmpl, _ := NewTemplate(session)

	row, err := tmpl.QueryForMap(context.Background(), stmt, 1)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"id": 1, "name": "ada"}, row)

	// Only two rows are ever fetched for the single-row check.
	q := session.LastQuery(stmt)
	require.NotNil(t, q)
	require.NotNil(t, q.AppliedPageSize)
	require.Equal(t, 2, *q.AppliedPageSize)
}

func TestQueryForMap_NoResults(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	_, err := tmpl.QueryForMap(context.Background(), "SELECT * FROM users WHERE id = ?", 1)
	require.ErrorIs(t, err, types.ErrNoResults)
}

func TestQueryForMap_TooManyResults(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT * FROM users"
	session.SetMapRows(stmt, []map[string]any{{"id": 1}, {"id": 2}})

	tmpl, _ := NewTemplate(session)

	_, err := tmpl.QueryForMap(context.Background(), stmt)
	require.ErrorIs(t, err, types.ErrTooManyResults)
}

func TestQueryForSlice(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT * FROM users"
	session.SetMapRows(stmt, []map[string]any{{"id": 1}, {"id": 2}})

	tmpl, _ := NewTemplate(session)

	rows, err := tmpl.QueryForSlice(context.Background(), stmt)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestQueryForSlice_EmptyCQL(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	_, err := tmpl.QueryForSlice(context.Background(), "")
	require.ErrorIs(t, err, types.ErrEmptyCQL)
}

func TestQueryRows(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT id, name FROM users"
	session.SetRows(stmt, [][]any{{1, "ada"}, {2, "grace"}})
	session.SetColumns(stmt, "id", "name")

	tmpl, _ := NewTemplate(session)

	rows, err := tmpl.QueryRows(context.Background(), stmt)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, rows.Columns())

	var ids []int
	for rows.Next() {
		var id int
		var name string
		require.NoError(t, rows.Scan(&id, &name))
		ids = append(ids, id)
	}

	require.NoError(t, rows.Close())
	require.Equal(t, []int{1, 2}, ids)

	// Close is idempotent and Next stops after Close.
	require.NoError(t, rows.Close())
	require.False(t, rows.Next())
}

func TestQueryRows_CloseReturnsIterationError(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT id FROM users"
	cause := errors.New("iteration failed")
	session.SetError(stmt, cause)

	tmpl, _ := NewTemplate(session)

	rows, err := tmpl.QueryRows(context.Background(), stmt)
	require.NoError(t, err)
	require.False(t, rows.Next())

	err = rows.Close()
	var dae *types.DataAccessError
	require.ErrorAs(t, err, &dae)
	require.Equal(t, "QueryRows", dae.Task)
	require.Equal(t, stmt, dae.CQL)
	require.ErrorIs(t, err, cause)
}

func TestTemplate_Metrics(t *testing.T) {
	session := testutil.NewMockSession()
	collector := newRecordingMetrics()
	tmpl, _ := NewTemplate(session,
		WithKeyspace("app"),
		WithMetrics(collector),
	)

	require.NoError(t, tmpl.Execute(context.Background(), "INSERT INTO t (id) VALUES (?)", 1))
	require.Equal(t, 1, collector.count("execute_total:app"))
	require.Equal(t, 1, collector.count("execute_duration:app"))
	require.Zero(t, collector.count("execute_error:app"))

	session.SetError("DROP TABLE t", errors.New("boom"))
	require.Error(t, tmpl.Execute(context.Background(), "DROP TABLE t"))
	require.Equal(t, 1, collector.count("execute_error:app"))

	_, err := tmpl.QueryForSlice(context.Background(), "SELECT * FROM t")
	require.NoError(t, err)
	require.Equal(t, 1, collector.count("query_total:app"))
	require.Equal(t, 1, collector.count("query_duration:app"))
}

func TestTemplate_SessionAccessor(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	require.Same(t, session, tmpl.Session().(*testutil.MockSession))
}
