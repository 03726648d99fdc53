package keyspace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cql    string
		quoted bool
	}{
		{"simple", "app", "app", false},
		{"folded to lower case", "MyKeyspace", "mykeyspace", false},
		{"underscore", "my_keyspace", "my_keyspace", false},
		{"leading digit quoted", "1app", `"1app"`, true},
		{"hyphen quoted", "my-keyspace", `"my-keyspace"`, true},
		{"reserved word quoted", "select", `"select"`, true},
		{"embedded quote escaped", `we"ird`, `"we""ird"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewIdentifier(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.cql, id.CQL())
			require.Equal(t, tt.quoted, id.Quoted())
		})
	}
}

func TestNewIdentifier_Invalid(t *testing.T) {
	_, err := NewIdentifier("")
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewIdentifier(strings.Repeat("a", 49))
	require.ErrorIs(t, err, ErrNameTooLong)

	_, err = NewIdentifier(strings.Repeat("a", 48))
	require.NoError(t, err)
}

func TestReplication_CQL(t *testing.T) {
	require.Equal(t,
		"{'class': 'SimpleStrategy', 'replication_factor': 3}",
		SimpleStrategy(3).CQL(),
	)

	// Datacenters render in lexical order.
	require.Equal(t,
		"{'class': 'NetworkTopologyStrategy', 'dc1': 3, 'dc2': 2}",
		NetworkTopologyStrategy(map[string]int{"dc2": 2, "dc1": 3}).CQL(),
	)
}

func TestAlter_CQL(t *testing.T) {
	stmt, err := Alter("app").
		With(SimpleStrategy(3)).
		DurableWrites(true).
		CQL()
	require.NoError(t, err)
	require.Equal(t,
		"ALTER KEYSPACE app WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 3} AND durable_writes = true",
		stmt,
	)
}

func TestAlter_ReplicationOnly(t *testing.T) {
	stmt, err := Alter("app").
		With(NetworkTopologyStrategy(map[string]int{"east": 3})).
		CQL()
	require.NoError(t, err)
	require.Equal(t,
		"ALTER KEYSPACE app WITH replication = {'class': 'NetworkTopologyStrategy', 'east': 3}",
		stmt,
	)
}

func TestAlter_DurableWritesOnly(t *testing.T) {
	stmt, err := Alter("app").DurableWrites(false).CQL()
	require.NoError(t, err)
	require.Equal(t, "ALTER KEYSPACE app WITH durable_writes = false", stmt)
}

func TestAlter_NoOptions(t *testing.T) {
	_, err := Alter("app").CQL()
	require.ErrorIs(t, err, ErrNoOptions)
}

func TestAlter_InvalidName(t *testing.T) {
	_, err := Alter("").With(SimpleStrategy(1)).CQL()
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestCreate_CQL(t *testing.T) {
	stmt, err := Create("app").With(SimpleStrategy(1)).CQL()
	require.NoError(t, err)
	require.Equal(t,
		"CREATE KEYSPACE app WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}",
		stmt,
	)
}

func TestCreate_IfNotExistsWithDurableWrites(t *testing.T) {
	stmt, err := Create("App Space").
		IfNotExists().
		With(SimpleStrategy(2)).
		DurableWrites(true).
		CQL()
	require.NoError(t, err)
	require.Equal(t,
		`CREATE KEYSPACE IF NOT EXISTS "App Space" WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 2} AND durable_writes = true`,
		stmt,
	)
}

func TestCreate_NoReplication(t *testing.T) {
	_, err := Create("app").CQL()
	require.ErrorIs(t, err, ErrNoReplication)
}

func TestDrop_CQL(t *testing.T) {
	stmt, err := Drop("app").CQL()
	require.NoError(t, err)
	require.Equal(t, "DROP KEYSPACE app", stmt)

	stmt, err = Drop("app").IfExists().CQL()
	require.NoError(t, err)
	require.Equal(t, "DROP KEYSPACE IF EXISTS app", stmt)
}
