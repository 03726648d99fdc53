package cql

import (
	"context"

	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// Consistency is a convenience alias re-exported from the types package.
type Consistency = types.Consistency

// Re-export consistency level constants for convenience.
const (
	Any         = types.Any
	One         = types.One
	Two         = types.Two
	Three       = types.Three
	Quorum      = types.Quorum
	All         = types.All
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)

// Session represents a raw CQL session from the underlying driver.
//
// This interface is implemented by adapters for gocql v1 and the Apache
// gocql driver v2. It provides the low-level operations the template
// orchestrates.
type Session interface {
	// Query creates a new query for the given statement.
	//
	// Parameters:
	//   - stmt: CQL statement with ? placeholders
	//   - values: Values to bind to placeholders
	//
	// Returns:
	//   - Query: A query builder
	Query(stmt string, values ...any) Query

	// Prepare prepares a statement for repeated execution.
	//
	// Parameters:
	//   - ctx: Context for the preparation round trip
	//   - stmt: CQL statement with ? placeholders
	//
	// Returns:
	//   - PreparedStatement: A handle that binds values into queries
	//   - error: nil on success, error if preparation fails
	Prepare(ctx context.Context, stmt string) (PreparedStatement, error)

	// Close terminates the session.
	Close()
}

// Query represents a raw CQL query from the underlying driver.
type Query interface {
	// Consistency sets the consistency level.
	Consistency(c Consistency) Query

	// SerialConsistency sets the consistency level for the serial phase of
	// lightweight transactions. Valid values are Serial or LocalSerial.
	SerialConsistency(c Consistency) Query

	// PageSize sets the page size.
	PageSize(n int) Query

	// PageState sets the pagination state.
	PageState(state []byte) Query

	// RetryPolicy sets the driver retry policy. The concrete type belongs to
	// the wrapped driver; adapters assert it and ignore mismatches.
	RetryPolicy(policy any) Query

	// Idempotent marks the query as safe to retry.
	Idempotent(idempotent bool) Query

	// WithTimestamp sets the write timestamp.
	WithTimestamp(ts int64) Query

	// ExecContext executes the query.
	ExecContext(ctx context.Context) error

	// ScanContext executes and scans a single row.
	ScanContext(ctx context.Context, dest ...any) error

	// MapScanContext executes and scans a single row into a map.
	MapScanContext(ctx context.Context, m map[string]any) error

	// IterContext returns an iterator for results.
	IterContext(ctx context.Context) Iter

	// ScanCASContext executes a lightweight transaction and scans the result.
	// Returns applied=true if the transaction succeeded.
	ScanCASContext(ctx context.Context, dest ...any) (applied bool, err error)

	// MapScanCASContext executes a lightweight transaction and scans into a map.
	// Returns applied=true if the transaction succeeded.
	MapScanCASContext(ctx context.Context, dest map[string]any) (applied bool, err error)

	// Statement returns the CQL statement.
	Statement() string

	// Values returns the bound values.
	Values() []any

	// Release returns the query to a pool (if applicable).
	Release()
}

// PreparedStatement represents a server-side prepared statement.
type PreparedStatement interface {
	// Bind binds values to the statement's placeholders and returns a query.
	Bind(values ...any) Query

	// Statement returns the CQL statement the handle was prepared from.
	Statement() string
}

// Iter represents a raw CQL iterator from the underlying driver.
type Iter interface {
	// Scan reads the next row.
	Scan(dest ...any) bool

	// MapScan reads the next row into a map.
	MapScan(m map[string]any) bool

	// SliceMap reads all rows into a slice of maps.
	SliceMap() ([]map[string]any, error)

	// PageState returns the pagination token.
	PageState() []byte

	// NumRows returns the number of rows in the current page.
	NumRows() int

	// Columns returns metadata about the columns in the result set.
	Columns() []ColumnInfo

	// Scanner returns a database/sql-style scanner for the iterator.
	Scanner() Scanner

	// Warnings returns any warnings from the Cassandra server.
	Warnings() []string

	// Close closes the iterator.
	Close() error
}

// ColumnInfo holds metadata about a column in query results.
type ColumnInfo struct {
	Keyspace string
	Table    string
	Name     string
	TypeInfo any
}

// Scanner provides database/sql-style row scanning.
type Scanner interface {
	// Next advances to the next row, returning true if a row is available.
	Next() bool

	// Scan reads the current row into dest.
	Scan(dest ...any) error

	// Err returns any error from iteration and releases resources.
	Err() error
}
