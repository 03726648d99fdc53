package types

import "errors"

// Error category sentinels.
//
// A *DataAccessError produced by the error translation hook wraps exactly
// one of these, so callers can match failure classes with errors.Is without
// depending on a driver package.
var (
	// ErrReadTimeout indicates the coordinator timed out waiting for replica reads.
	ErrReadTimeout = errors.New("cassandra: read timeout")

	// ErrWriteTimeout indicates the coordinator timed out waiting for replica writes.
	ErrWriteTimeout = errors.New("cassandra: write timeout")

	// ErrUnavailable indicates not enough replicas were alive to satisfy the
	// requested consistency level.
	ErrUnavailable = errors.New("cassandra: not enough replicas available")

	// ErrOverloaded indicates the coordinator reported itself overloaded.
	ErrOverloaded = errors.New("cassandra: coordinator overloaded")

	// ErrAlreadyExists indicates a DDL statement targeted a keyspace or table
	// that already exists.
	ErrAlreadyExists = errors.New("cassandra: keyspace or table already exists")

	// ErrInvalidQuery indicates the statement was syntactically or semantically
	// rejected by the server.
	ErrInvalidQuery = errors.New("cassandra: invalid query")

	// ErrUnauthorized indicates the session lacks permission for the statement.
	ErrUnauthorized = errors.New("cassandra: unauthorized")

	// ErrTruncateFailed indicates a TRUNCATE did not complete on all replicas.
	ErrTruncateFailed = errors.New("cassandra: truncate failed")
)

// Precondition sentinels.
//
// These are returned before any driver interaction when an operation is
// invoked with arguments it cannot act on.
var (
	// ErrNilArgument indicates a required argument was nil.
	ErrNilArgument = errors.New("cassandra: argument cannot be nil")

	// ErrEmptyCQL indicates an empty CQL statement was provided.
	ErrEmptyCQL = errors.New("cassandra: statement cannot be empty")

	// ErrNilSession indicates that a nil session was provided.
	ErrNilSession = errors.New("cassandra: session cannot be nil")

	// ErrMissingID indicates an entity's identifier could not be resolved.
	ErrMissingID = errors.New("cassandra: entity id cannot be resolved")

	// ErrNoResults indicates a single-row query returned no rows.
	ErrNoResults = errors.New("cassandra: query returned no results")

	// ErrTooManyResults indicates a single-row query returned more than one row.
	ErrTooManyResults = errors.New("cassandra: query returned more than one result")
)

// DataAccessError wraps a driver failure with the task that was being
// performed and the CQL that triggered it.
//
// Category is one of the sentinel errors above (or nil when the failure
// does not map to a known class); Cause is the original driver error.
// Both participate in errors.Is / errors.As matching via Unwrap.
type DataAccessError struct {
	// Task describes the operation that failed, e.g. "Execute" or "QueryForMap".
	Task string

	// CQL is the statement involved, empty when not applicable.
	CQL string

	// Category is the matched error category sentinel, nil if uncategorized.
	Category error

	// Cause is the underlying driver error.
	Cause error
}

// Error returns a message combining task, CQL, and the underlying cause.
func (e *DataAccessError) Error() string {
	msg := "cassandra: " + e.Task + " failed"
	if e.CQL != "" {
		msg += " [" + e.CQL + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the category sentinel and the underlying cause.
func (e *DataAccessError) Unwrap() []error {
	if e.Category == nil {
		return []error{e.Cause}
	}
	return []error{e.Category, e.Cause}
}

// ErrorTranslator maps driver errors to error category sentinels.
//
// Adapters provide a translator for their driver; the template consults it
// when wrapping failures into *DataAccessError values.
type ErrorTranslator interface {
	// Translate returns the category sentinel for the given driver error,
	// or nil if the error does not map to a known category.
	Translate(err error) error
}

// ErrorTranslatorFunc adapts a plain function to the ErrorTranslator interface.
type ErrorTranslatorFunc func(err error) error

// Translate calls f(err).
func (f ErrorTranslatorFunc) Translate(err error) error {
	return f(err)
}
