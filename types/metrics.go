package types

// MetricsCollector receives operational metrics from the template.
//
// The keyspace label is the value configured via the template's WithKeyspace
// option, or "default" when unset. Implementations must be safe for
// concurrent use. When no collector is configured, a no-op implementation
// is used.
type MetricsCollector interface {
	// IncExecuteTotal increments the total count of write statements.
	IncExecuteTotal(keyspace string)

	// IncExecuteError increments the count of failed write statements.
	IncExecuteError(keyspace string)

	// ObserveExecuteDuration records the duration of a write statement in seconds.
	ObserveExecuteDuration(keyspace string, seconds float64)

	// IncQueryTotal increments the total count of read statements.
	IncQueryTotal(keyspace string)

	// IncQueryError increments the count of failed read statements.
	IncQueryError(keyspace string)

	// ObserveQueryDuration records the duration of a read statement in seconds.
	ObserveQueryDuration(keyspace string, seconds float64)

	// IncStatementCacheHit increments the prepared-statement cache hit count.
	IncStatementCacheHit(keyspace string)

	// IncStatementCacheMiss increments the prepared-statement cache miss count.
	IncStatementCacheMiss(keyspace string)
}
