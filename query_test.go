package cassandra

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dileepthomas86/spring-data-cassandra/test/testutil"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

type user struct {
	ID   int
	Name string
}

func userMapper(row RowScanner) (user, error) {
	var u user
	err := row.Scan(&u.ID, &u.Name)

	return u, err
}

func TestQuery(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT id, name FROM users"
	session.SetRows(stmt, [][]any{{1, "ada"}, {2, "grace"}})

	tmpl, _ := NewTemplate(session)

	users, err := Query(context.Background(), tmpl, stmt, userMapper)
	require.NoError(t, err)
	require.Equal(t, []user{{1, "ada"}, {2, "grace"}}, users)
}

func TestQuery_NilMapper(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	_, err := Query[user](context.Background(), tmpl, "SELECT 1", nil)
	require.ErrorIs(t, err, types.ErrNilArgument)
	require.Zero(t, session.ExecutionCount())
}

func TestQuery_MapperError(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT id, name FROM users"
	session.SetRows(stmt, [][]any{{1, "ada"}})

	tmpl, _ := NewTemplate(session)
	mapperErr := errors.New("bad row")

	_, err := Query(context.Background(), tmpl, stmt, func(RowScanner) (user, error) {
		return user{}, mapperErr
	})
	require.ErrorIs(t, err, mapperErr)
}

func TestQuery_NoRows(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	users, err := Query(context.Background(), tmpl, "SELECT id, name FROM users", userMapper)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestQueryOne(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT id, name FROM users WHERE id = ?"
	session.SetRows(stmt, [][]any{{1, "ada"}})

	tmpl, _ := NewTemplate(session)

	u, err := QueryOne(context.Background(), tmpl, stmt, userMapper, 1)
	require.NoError(t, err)
	require.Equal(t, user{1, "ada"}, u)

	// Only two rows are ever fetched for the single-row check.
	q := session.LastQuery(stmt)
	require.NotNil(t, q)
	require.Equal(t, 2, *q.AppliedPageSize)
}

func TestQueryOne_NoResults(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	_, err := QueryOne(context.Background(), tmpl, "SELECT id, name FROM users WHERE id = ?", userMapper, 99)
	require.ErrorIs(t, err, types.ErrNoResults)
}

func TestQueryOne_TooManyResults(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT id, name FROM users"
	session.SetRows(stmt, [][]any{{1, "ada"}, {2, "grace"}})

	tmpl, _ := NewTemplate(session)

	_, err := QueryOne(context.Background(), tmpl, stmt, userMapper)
	require.ErrorIs(t, err, types.ErrTooManyResults)
}

func TestSingleColumn(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT name FROM users"
	session.SetRows(stmt, [][]any{{"ada"}, {"grace"}})

	tmpl, _ := NewTemplate(session)

	names, err := Query(context.Background(), tmpl, stmt, SingleColumn[string]())
	require.NoError(t, err)
	require.Equal(t, []string{"ada", "grace"}, names)
}

func TestExtract(t *testing.T) {
	session := testutil.NewMockSession()
	stmt := "SELECT id, name FROM users"
	session.SetRows(stmt, [][]any{{1, "ada"}, {2, "grace"}})

	tmpl, _ := NewTemplate(session)

	count, err := Extract(context.Background(), tmpl, stmt, func(rows *Rows) (int, error) {
		n := 0
		for rows.Next() {
			var id int
			var name string
			if err := rows.Scan(&id, &name); err != nil {
				return 0, err
			}
			n++
		}

		return n, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestExtract_NilExtractor(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, _ := NewTemplate(session)

	_, err := Extract[int](context.Background(), tmpl, "SELECT 1", nil)
	require.ErrorIs(t, err, types.ErrNilArgument)
}
