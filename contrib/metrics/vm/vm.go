// Package vm provides a VictoriaMetrics-based implementation of
// types.MetricsCollector.
package vm

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "cassandra"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// keyspaceMetrics bundles the metrics for one keyspace label.
type keyspaceMetrics struct {
	executeTotal    *metrics.Counter
	executeErrors   *metrics.Counter
	executeDuration *metrics.Histogram
	queryTotal      *metrics.Counter
	queryErrors     *metrics.Counter
	queryDuration   *metrics.Histogram
	cacheHits       *metrics.Counter
	cacheMisses     *metrics.Counter
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// Metrics are created on the first observation for a keyspace label and
// cached, so the hot path is a plain counter increment. Thread-safe for
// concurrent use.
type Collector struct {
	set       *metrics.Set
	prefix    string
	keyspaces *xsync.MapOf[string, *keyspaceMetrics]
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set unless one is provided via
// WithMetricsSet.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	tmpl, _ := cassandra.NewTemplate(session,
//	    cassandra.WithMetrics(collector),
//	)
//	http.HandleFunc("/metrics", collector.Handler)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix:    "cassandra",
		keyspaces: xsync.NewMapOf[string, *keyspaceMetrics](),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.set == nil {
		c.set = metrics.NewSet()
	}

	return c
}

// Set returns the underlying metrics set.
func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// forKeyspace returns the cached metrics bundle for a keyspace label,
// creating it on first use.
func (c *Collector) forKeyspace(keyspace string) *keyspaceMetrics {
	m, _ := c.keyspaces.LoadOrCompute(keyspace, func() *keyspaceMetrics {
		return &keyspaceMetrics{
			executeTotal:    c.set.NewCounter(fmt.Sprintf(`%s_execute_total{keyspace=%q}`, c.prefix, keyspace)),
			executeErrors:   c.set.NewCounter(fmt.Sprintf(`%s_execute_errors_total{keyspace=%q}`, c.prefix, keyspace)),
			executeDuration: c.set.NewHistogram(fmt.Sprintf(`%s_execute_duration_seconds{keyspace=%q}`, c.prefix, keyspace)),
			queryTotal:      c.set.NewCounter(fmt.Sprintf(`%s_query_total{keyspace=%q}`, c.prefix, keyspace)),
			queryErrors:     c.set.NewCounter(fmt.Sprintf(`%s_query_errors_total{keyspace=%q}`, c.prefix, keyspace)),
			queryDuration:   c.set.NewHistogram(fmt.Sprintf(`%s_query_duration_seconds{keyspace=%q}`, c.prefix, keyspace)),
			cacheHits:       c.set.NewCounter(fmt.Sprintf(`%s_statement_cache_hits_total{keyspace=%q}`, c.prefix, keyspace)),
			cacheMisses:     c.set.NewCounter(fmt.Sprintf(`%s_statement_cache_misses_total{keyspace=%q}`, c.prefix, keyspace)),
		}
	})

	return m
}

// IncExecuteTotal increments the total count of write statements.
func (c *Collector) IncExecuteTotal(keyspace string) {
	c.forKeyspace(keyspace).executeTotal.Inc()
}

// IncExecuteError increments the count of failed write statements.
func (c *Collector) IncExecuteError(keyspace string) {
	c.forKeyspace(keyspace).executeErrors.Inc()
}

// ObserveExecuteDuration records the duration of a write statement in seconds.
func (c *Collector) ObserveExecuteDuration(keyspace string, seconds float64) {
	c.forKeyspace(keyspace).executeDuration.Update(seconds)
}

// IncQueryTotal increments the total count of read statements.
func (c *Collector) IncQueryTotal(keyspace string) {
	c.forKeyspace(keyspace).queryTotal.Inc()
}

// IncQueryError increments the count of failed read statements.
func (c *Collector) IncQueryError(keyspace string) {
	c.forKeyspace(keyspace).queryErrors.Inc()
}

// ObserveQueryDuration records the duration of a read statement in seconds.
func (c *Collector) ObserveQueryDuration(keyspace string, seconds float64) {
	c.forKeyspace(keyspace).queryDuration.Update(seconds)
}

// IncStatementCacheHit increments the prepared-statement cache hit count.
func (c *Collector) IncStatementCacheHit(keyspace string) {
	c.forKeyspace(keyspace).cacheHits.Inc()
}

// IncStatementCacheMiss increments the prepared-statement cache miss count.
func (c *Collector) IncStatementCacheMiss(keyspace string) {
	c.forKeyspace(keyspace).cacheMisses.Inc()
}
