package cassandra

import (
	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
)

// SessionFactory supplies the CQL session a template executes against.
//
// The indirection allows callers to swap or rebuild sessions (for example
// after a schema migration) without reconstructing templates.
type SessionFactory interface {
	// Session returns the session to execute against.
	Session() cql.Session
}

// sessionFactory is the default SessionFactory holding a fixed session.
type sessionFactory struct {
	session cql.Session
}

// NewSessionFactory creates a SessionFactory that always returns the given
// session.
//
// Parameters:
//   - session: The session to supply
//
// Returns:
//   - SessionFactory: A factory returning the fixed session
func NewSessionFactory(session cql.Session) SessionFactory {
	return &sessionFactory{session: session}
}

// Session returns the fixed session.
func (f *sessionFactory) Session() cql.Session {
	return f.session
}
