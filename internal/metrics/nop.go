// Package metrics provides internal metrics utilities.
package metrics

import "github.com/dileepthomas86/spring-data-cassandra/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// IncExecuteTotal discards the metric.
func (m *NopMetrics) IncExecuteTotal(_ string) {}

// IncExecuteError discards the metric.
func (m *NopMetrics) IncExecuteError(_ string) {}

// ObserveExecuteDuration discards the metric.
func (m *NopMetrics) ObserveExecuteDuration(_ string, _ float64) {}

// IncQueryTotal discards the metric.
func (m *NopMetrics) IncQueryTotal(_ string) {}

// IncQueryError discards the metric.
func (m *NopMetrics) IncQueryError(_ string) {}

// ObserveQueryDuration discards the metric.
func (m *NopMetrics) ObserveQueryDuration(_ string, _ float64) {}

// IncStatementCacheHit discards the metric.
func (m *NopMetrics) IncStatementCacheHit(_ string) {}

// IncStatementCacheMiss discards the metric.
func (m *NopMetrics) IncStatementCacheMiss(_ string) {}
