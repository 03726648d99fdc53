package cassandra

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// statementCache caches prepared statement handles keyed by CQL text.
//
// Each entry remembers the session it was prepared on: an entry prepared on
// a different session than the current one counts as a miss and is
// re-prepared, so swapping the factory's session never revives handles bound
// to the old session. Entries live for the lifetime of the template; the
// streaming and repository bulk paths prepare a handful of distinct
// statements, so the cache is unbounded.
type statementCache struct {
	entries  *xsync.MapOf[string, cacheEntry]
	metrics  types.MetricsCollector
	keyspace string
}

// cacheEntry pairs a prepared handle with the session that prepared it.
type cacheEntry struct {
	session cql.Session
	ps      cql.PreparedStatement
}

func newStatementCache(collector types.MetricsCollector, keyspace string) *statementCache {
	return &statementCache{
		entries:  xsync.NewMapOf[string, cacheEntry](),
		metrics:  collector,
		keyspace: keyspace,
	}
}

// prepare returns the cached handle for stmt, preparing and caching it when
// no entry exists for the current session. Concurrent first preparations may
// both hit the driver; the last stored entry wins.
func (c *statementCache) prepare(ctx context.Context, session cql.Session, stmt string) (cql.PreparedStatement, error) {
	if e, ok := c.entries.Load(stmt); ok && e.session == session {
		c.metrics.IncStatementCacheHit(c.keyspace)
		return e.ps, nil
	}

	c.metrics.IncStatementCacheMiss(c.keyspace)

	ps, err := session.Prepare(ctx, stmt)
	if err != nil {
		return nil, err
	}
	c.entries.Store(stmt, cacheEntry{session: session, ps: ps})

	return ps, nil
}
