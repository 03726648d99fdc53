package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector_WritePrometheus(t *testing.T) {
	c := New(WithPrefix("test"))

	c.IncExecuteTotal("app")
	c.IncExecuteTotal("app")
	c.IncExecuteError("app")
	c.IncQueryTotal("app")
	c.ObserveExecuteDuration("app", 0.01)
	c.ObserveQueryDuration("app", 0.02)
	c.IncStatementCacheHit("app")
	c.IncStatementCacheMiss("app")

	var buf bytes.Buffer
	c.WritePrometheus(&buf)
	out := buf.String()

	require.Contains(t, out, `test_execute_total{keyspace="app"} 2`)
	require.Contains(t, out, `test_execute_errors_total{keyspace="app"} 1`)
	require.Contains(t, out, `test_query_total{keyspace="app"} 1`)
	require.Contains(t, out, `test_statement_cache_hits_total{keyspace="app"} 1`)
	require.Contains(t, out, `test_statement_cache_misses_total{keyspace="app"} 1`)
	require.Contains(t, out, `test_execute_duration_seconds_count`)
}

func TestCollector_MultipleKeyspaces(t *testing.T) {
	c := New()

	c.IncQueryTotal("ks_a")
	c.IncQueryTotal("ks_b")

	var buf bytes.Buffer
	c.WritePrometheus(&buf)
	out := buf.String()

	require.Contains(t, out, `cassandra_query_total{keyspace="ks_a"} 1`)
	require.Contains(t, out, `cassandra_query_total{keyspace="ks_b"} 1`)
}
