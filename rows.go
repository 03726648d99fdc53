package cassandra

import (
	"time"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
)

// Rows is a cursor over a query's result set, in the style of database/sql.
//
// Iterate with Next and Scan, then Close to release resources and observe
// any deferred iteration error:
//
//	rows, err := tmpl.QueryRows(ctx, "SELECT id, name FROM users")
//	if err != nil {
//	    return err
//	}
//	for rows.Next() {
//	    var id, name string
//	    if err := rows.Scan(&id, &name); err != nil {
//	        rows.Close()
//	        return err
//	    }
//	}
//	if err := rows.Close(); err != nil {
//	    return err
//	}
//
// Rows is not safe for concurrent use.
type Rows struct {
	iter      cql.Iter
	scanner   cql.Scanner
	query     cql.Query
	started   time.Time
	onClose   func(start time.Time, err error)
	translate func(err error) error
	closed    bool
}

// Next advances to the next row, fetching further pages as needed. It
// returns false when no rows remain or iteration failed; Close reports the
// failure.
func (r *Rows) Next() bool {
	if r.closed {
		return false
	}

	return r.scanner.Next()
}

// Scan reads the current row into dest.
func (r *Rows) Scan(dest ...any) error {
	return r.translate(r.scanner.Scan(dest...))
}

// Columns returns the column names of the result set.
func (r *Rows) Columns() []string {
	cols := r.iter.Columns()
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}

	return names
}

// PageState returns the pagination token for resuming the query.
func (r *Rows) PageState() []byte {
	return r.iter.PageState()
}

// Warnings returns any warnings from the Cassandra server.
func (r *Rows) Warnings() []string {
	return r.iter.Warnings()
}

// Close releases the cursor's resources and returns any error encountered
// during iteration. Close is idempotent.
func (r *Rows) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.scanner.Err()
	r.query.Release()
	if r.onClose != nil {
		r.onClose(r.started, err)
	}

	return r.translate(err)
}
