package cassandra

import (
	"context"

	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// RowScanner reads the columns of the current row into dest values.
//
// It is the per-row view handed to a RowMapper; *Rows satisfies it.
type RowScanner interface {
	Scan(dest ...any) error
}

// RowMapper translates the current row into a value of type T.
//
// The mapper must not retain the scanner; it is only valid for the current
// row.
type RowMapper[T any] func(row RowScanner) (T, error)

// ResultSetExtractor consumes an entire result set and produces a single
// value. Unlike a RowMapper it controls iteration itself; the template
// closes the cursor after the extractor returns.
type ResultSetExtractor[T any] func(rows *Rows) (T, error)

// Query executes a query and maps every row with the given mapper,
// preserving row order.
//
// Parameters:
//   - ctx: Context for the query
//   - t: The template to execute on
//   - stmt: CQL statement with ? placeholders
//   - mapper: Row translation function (required)
//   - args: Values to bind to placeholders
//
// Returns:
//   - []T: Mapped rows, empty when none matched
//   - error: Precondition sentinel, mapper error, or translated driver error
func Query[T any](ctx context.Context, t *Template, stmt string, mapper RowMapper[T], args ...any) ([]T, error) {
	if mapper == nil {
		return nil, types.ErrNilArgument
	}

	rows, err := t.QueryRows(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}

	var results []T
	for rows.Next() {
		v, err := mapper(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		results = append(results, v)
	}

	if err := rows.Close(); err != nil {
		return nil, err
	}

	return results, nil
}

// QueryOne executes a query expected to return exactly one row and maps it
// with the given mapper.
//
// Parameters:
//   - ctx: Context for the query
//   - t: The template to execute on
//   - stmt: CQL statement with ? placeholders
//   - mapper: Row translation function (required)
//   - args: Values to bind to placeholders
//
// Returns:
//   - T: The mapped row
//   - error: types.ErrNoResults on zero rows, types.ErrTooManyResults on
//     more than one, mapper error, or translated driver error
func QueryOne[T any](ctx context.Context, t *Template, stmt string, mapper RowMapper[T], args ...any) (T, error) {
	var zero T
	if mapper == nil {
		return zero, types.ErrNilArgument
	}

	// Two rows are enough to detect a violated single-row expectation.
	rows, err := t.QueryRowsStatement(ctx, NewStatement(stmt, args...).WithPageSize(2))
	if err != nil {
		return zero, err
	}

	if !rows.Next() {
		if err := rows.Close(); err != nil {
			return zero, err
		}

		return zero, types.ErrNoResults
	}

	v, err := mapper(rows)
	if err != nil {
		rows.Close()
		return zero, err
	}

	if rows.Next() {
		rows.Close()
		return zero, types.ErrTooManyResults
	}

	if err := rows.Close(); err != nil {
		return zero, err
	}

	return v, nil
}

// Extract executes a query and hands the whole result set to the extractor.
//
// Parameters:
//   - ctx: Context for the query
//   - t: The template to execute on
//   - stmt: CQL statement with ? placeholders
//   - extractor: Result set consumer (required)
//   - args: Values to bind to placeholders
//
// Returns:
//   - T: The extracted value
//   - error: Precondition sentinel, extractor error, or translated driver error
func Extract[T any](ctx context.Context, t *Template, stmt string, extractor ResultSetExtractor[T], args ...any) (T, error) {
	var zero T
	if extractor == nil {
		return zero, types.ErrNilArgument
	}

	rows, err := t.QueryRows(ctx, stmt, args...)
	if err != nil {
		return zero, err
	}

	v, err := extractor(rows)
	if closeErr := rows.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return zero, err
	}

	return v, nil
}

// SingleColumn returns a RowMapper reading the first column of each row into
// a value of type T.
func SingleColumn[T any]() RowMapper[T] {
	return func(row RowScanner) (T, error) {
		var v T
		err := row.Scan(&v)

		return v, err
	}
}
