package cassandra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dileepthomas86/spring-data-cassandra/test/testutil"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

func TestStatement_Builders(t *testing.T) {
	stmt := NewStatement("SELECT * FROM t WHERE id = ?", 7).
		WithConsistency(types.One).
		WithSerialConsistency(types.LocalSerial).
		WithPageSize(50).
		WithPageState([]byte{0x01}).
		WithRetryPolicy("policy").
		WithIdempotent(true).
		WithTimestamp(123456)

	require.Equal(t, "SELECT * FROM t WHERE id = ?", stmt.CQL())
	require.Equal(t, []any{7}, stmt.Args())
	require.Equal(t, types.One, *stmt.Consistency())
	require.Equal(t, types.LocalSerial, *stmt.SerialConsistency())
	require.Equal(t, 50, *stmt.PageSize())
	require.Equal(t, []byte{0x01}, stmt.PageState())
	require.Equal(t, "policy", stmt.RetryPolicy())
	require.True(t, *stmt.Idempotent())
	require.Equal(t, int64(123456), *stmt.Timestamp())
}

func TestStatement_UnsetByDefault(t *testing.T) {
	stmt := NewStatement("SELECT 1")

	require.Nil(t, stmt.Consistency())
	require.Nil(t, stmt.SerialConsistency())
	require.Nil(t, stmt.PageSize())
	require.Nil(t, stmt.PageState())
	require.Nil(t, stmt.RetryPolicy())
	require.Nil(t, stmt.Idempotent())
	require.Nil(t, stmt.Timestamp())
}

func TestApplySettings_ExplicitWinsOverDefaults(t *testing.T) {
	session := testutil.NewMockSession()
	retry := "template-policy"
	tmpl, err := NewTemplate(session,
		WithConsistency(types.Quorum),
		WithSerialConsistency(types.Serial),
		WithPageSize(100),
		WithRetryPolicy(retry),
	)
	require.NoError(t, err)

	stmt := NewStatement("UPDATE t SET v = ? WHERE id = ?", "x", 1).
		WithConsistency(types.One).
		WithPageSize(10)

	require.NoError(t, tmpl.ExecuteStatement(context.Background(), stmt))

	q := session.LastQuery(stmt.CQL())
	require.NotNil(t, q)

	// Explicit statement settings kept.
	require.Equal(t, types.One, *q.AppliedConsistency)
	require.Equal(t, 10, *q.AppliedPageSize)

	// Template defaults fill in only what the statement left unset.
	require.Equal(t, types.Serial, *q.AppliedSerialConsistency)
	require.Equal(t, retry, q.AppliedRetryPolicy)
}

func TestApplySettings_DefaultsWhenUnset(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, err := NewTemplate(session,
		WithConsistency(types.LocalQuorum),
		WithPageSize(500),
	)
	require.NoError(t, err)

	require.NoError(t, tmpl.Execute(context.Background(), "SELECT 1"))

	q := session.LastQuery("SELECT 1")
	require.NotNil(t, q)
	require.Equal(t, types.LocalQuorum, *q.AppliedConsistency)
	require.Equal(t, 500, *q.AppliedPageSize)
	require.Nil(t, q.AppliedSerialConsistency)
	require.Nil(t, q.AppliedRetryPolicy)
}

func TestApplySettings_NothingConfigured(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, err := NewTemplate(session)
	require.NoError(t, err)

	require.NoError(t, tmpl.Execute(context.Background(), "SELECT 1"))

	q := session.LastQuery("SELECT 1")
	require.NotNil(t, q)
	require.Nil(t, q.AppliedConsistency)
	require.Nil(t, q.AppliedSerialConsistency)
	require.Nil(t, q.AppliedPageSize)
	require.Nil(t, q.AppliedRetryPolicy)
}

func TestApplySettings_StatementOnlySettings(t *testing.T) {
	session := testutil.NewMockSession()
	tmpl, err := NewTemplate(session)
	require.NoError(t, err)

	stmt := NewStatement("INSERT INTO t (id) VALUES (?)", 1).
		WithIdempotent(true).
		WithTimestamp(42).
		WithPageState([]byte{0xAB})

	require.NoError(t, tmpl.ExecuteStatement(context.Background(), stmt))

	q := session.LastQuery(stmt.CQL())
	require.NotNil(t, q)
	require.True(t, *q.AppliedIdempotent)
	require.Equal(t, int64(42), *q.AppliedTimestamp)
	require.Equal(t, []byte{0xAB}, q.AppliedPageState)
}
