package cassandra

import (
	"context"
	"time"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// ExecResult reports the outcome of one statement execution on a streaming
// path.
type ExecResult struct {
	// Applied is true when the execution returned no error. Conditional
	// statements report the transaction's applied column instead.
	Applied bool

	// Err is the translated driver error, nil on success.
	Err error
}

// ExecuteStream prepares the statement once and executes it for every
// argument set received on args, emitting exactly one result per set in
// input order.
//
// The result channel closes when args closes or ctx is done; a context
// cancellation is reported as a final result before closing. The caller
// must consume the result channel until it closes.
//
// Parameters:
//   - ctx: Context bounding the whole stream
//   - stmt: CQL statement with ? placeholders
//   - args: Channel of bind argument sets (required)
//
// Returns:
//   - <-chan ExecResult: One result per received argument set
//   - error: Precondition sentinel or preparation failure
func (t *Template) ExecuteStream(ctx context.Context, stmt string, args <-chan []any) (<-chan ExecResult, error) {
	if stmt == "" {
		return nil, types.ErrEmptyCQL
	}
	if args == nil {
		return nil, types.ErrNilArgument
	}

	prepared, err := t.prepare(ctx, stmt)
	if err != nil {
		return nil, t.translate("ExecuteStream", stmt, err)
	}

	results := make(chan ExecResult)
	go func() {
		defer close(results)
		for {
			select {
			case <-ctx.Done():
				results <- ExecResult{Err: ctx.Err()}
				return
			case argSet, ok := <-args:
				if !ok {
					return
				}
				results <- t.executeOne(ctx, "ExecuteStream", stmt, t.applySettings(prepared.Bind(argSet...), nil))
			}
		}
	}()

	return results, nil
}

// ExecuteStatements executes every CQL statement received on stmts, emitting
// exactly one result per statement in input order.
//
// Statements are executed as-is without preparation since each is expected
// to be distinct. An empty statement yields a per-item types.ErrEmptyCQL
// result and the stream continues.
//
// Parameters:
//   - ctx: Context bounding the whole stream
//   - stmts: Channel of CQL statements (required)
//
// Returns:
//   - <-chan ExecResult: One result per received statement
//   - error: types.ErrNilArgument when stmts is nil
func (t *Template) ExecuteStatements(ctx context.Context, stmts <-chan string) (<-chan ExecResult, error) {
	if stmts == nil {
		return nil, types.ErrNilArgument
	}

	results := make(chan ExecResult)
	go func() {
		defer close(results)
		for {
			select {
			case <-ctx.Done():
				results <- ExecResult{Err: ctx.Err()}
				return
			case stmt, ok := <-stmts:
				if !ok {
					return
				}
				if stmt == "" {
					results <- ExecResult{Err: types.ErrEmptyCQL}
					continue
				}
				results <- t.executeOne(ctx, "ExecuteStatements", stmt, t.applySettings(t.Session().Query(stmt), nil))
			}
		}
	}()

	return results, nil
}

// executeOne runs a single streaming execution with metrics and translation,
// labeling failures with the originating operation.
func (t *Template) executeOne(ctx context.Context, task, stmt string, q cql.Query) ExecResult {
	t.config.Logger.Debug("executing statement", "cql", stmt)
	t.config.Metrics.IncExecuteTotal(t.config.Keyspace)

	start := time.Now()
	err := q.ExecContext(ctx)
	q.Release()
	t.config.Metrics.ObserveExecuteDuration(t.config.Keyspace, time.Since(start).Seconds())

	if err != nil {
		t.config.Metrics.IncExecuteError(t.config.Keyspace)
		return ExecResult{Err: t.translate(task, stmt, err)}
	}

	return ExecResult{Applied: true}
}
