package cassandra

import (
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// Statement carries a CQL statement, its bind arguments, and any settings
// explicitly set on it.
//
// Settings are tracked as set/unset: the template applies its own defaults
// only to settings the statement does not carry, so an explicit value on a
// statement is never overwritten.
//
// Statement is a builder and is not safe for concurrent mutation; build it
// fully before sharing.
type Statement struct {
	cql  string
	args []any

	consistency       *types.Consistency
	serialConsistency *types.Consistency
	pageSize          *int
	pageState         []byte
	retryPolicy       any
	idempotent        *bool
	timestamp         *int64
}

// NewStatement creates a statement for the given CQL and bind arguments.
//
// Parameters:
//   - cql: CQL statement with ? placeholders
//   - args: Values to bind to placeholders
//
// Returns:
//   - *Statement: A statement builder
func NewStatement(cql string, args ...any) *Statement {
	return &Statement{cql: cql, args: args}
}

// WithConsistency sets an explicit consistency level.
func (s *Statement) WithConsistency(c types.Consistency) *Statement {
	s.consistency = &c
	return s
}

// WithSerialConsistency sets an explicit serial consistency level for
// lightweight transactions. Valid values are Serial or LocalSerial.
func (s *Statement) WithSerialConsistency(c types.Consistency) *Statement {
	s.serialConsistency = &c
	return s
}

// WithPageSize sets an explicit page size.
func (s *Statement) WithPageSize(n int) *Statement {
	s.pageSize = &n
	return s
}

// WithPageState sets the pagination state to resume from.
func (s *Statement) WithPageState(state []byte) *Statement {
	s.pageState = state
	return s
}

// WithRetryPolicy sets an explicit driver retry policy.
func (s *Statement) WithRetryPolicy(policy any) *Statement {
	s.retryPolicy = policy
	return s
}

// WithIdempotent marks the statement as safe to retry.
func (s *Statement) WithIdempotent(idempotent bool) *Statement {
	s.idempotent = &idempotent
	return s
}

// WithTimestamp sets an explicit write timestamp in microseconds.
func (s *Statement) WithTimestamp(ts int64) *Statement {
	s.timestamp = &ts
	return s
}

// CQL returns the statement text.
func (s *Statement) CQL() string {
	return s.cql
}

// Args returns the bind arguments.
func (s *Statement) Args() []any {
	return s.args
}

// Consistency returns the explicit consistency level, or nil when unset.
func (s *Statement) Consistency() *types.Consistency {
	return s.consistency
}

// SerialConsistency returns the explicit serial consistency level, or nil
// when unset.
func (s *Statement) SerialConsistency() *types.Consistency {
	return s.serialConsistency
}

// PageSize returns the explicit page size, or nil when unset.
func (s *Statement) PageSize() *int {
	return s.pageSize
}

// PageState returns the pagination state, or nil when unset.
func (s *Statement) PageState() []byte {
	return s.pageState
}

// RetryPolicy returns the explicit retry policy, or nil when unset.
func (s *Statement) RetryPolicy() any {
	return s.retryPolicy
}

// Idempotent returns the explicit idempotence flag, or nil when unset.
func (s *Statement) Idempotent() *bool {
	return s.idempotent
}

// Timestamp returns the explicit write timestamp, or nil when unset.
func (s *Statement) Timestamp() *int64 {
	return s.timestamp
}
