package v1

import (
	"github.com/gocql/gocql"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
)

// ToGocqlConsistency converts a Consistency to gocql.Consistency.
//
// This is useful when you need to interact with the underlying gocql driver
// directly while using this module's consistency constants.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Consistency = v1.ToGocqlConsistency(cql.Quorum)
func ToGocqlConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

// FromGocqlConsistency converts a gocql.Consistency to a Consistency.
func FromGocqlConsistency(c gocql.Consistency) cql.Consistency {
	return cql.Consistency(c)
}

// ToGocqlSerialConsistency converts a Consistency to gocql.SerialConsistency.
//
// This is useful for CAS (lightweight transaction) operations that require
// serial consistency levels.
//
// Parameters:
//   - c: Consistency level (should be Serial or LocalSerial)
//
// Returns:
//   - gocql.SerialConsistency: The equivalent gocql serial consistency level
func ToGocqlSerialConsistency(c cql.Consistency) gocql.SerialConsistency {
	return gocql.SerialConsistency(c)
}

// FromGocqlSerialConsistency converts a gocql.SerialConsistency to a Consistency.
func FromGocqlSerialConsistency(c gocql.SerialConsistency) cql.Consistency {
	return cql.Consistency(c)
}

// UnwrapSession returns the underlying gocql.Session from a v1 Session adapter.
//
// This is useful when you need direct access to the underlying gocql session
// for operations not exposed by the adapter interface.
//
// Example:
//
//	gocqlSession := v1.UnwrapSession(session)
//	keyspaceMeta, _ := gocqlSession.KeyspaceMetadata("my_keyspace")
func UnwrapSession(s *Session) *gocql.Session {
	return s.session
}
