package v2

import (
	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/dileepthomas86/spring-data-cassandra/adapter/cql"
)

// ToGocqlConsistency converts a Consistency to gocql.Consistency.
//
// This is useful when you need to interact with the underlying driver
// directly while using this module's consistency constants.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Consistency = v2.ToGocqlConsistency(cql.Quorum)
func ToGocqlConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

// FromGocqlConsistency converts a gocql.Consistency to a Consistency.
func FromGocqlConsistency(c gocql.Consistency) cql.Consistency {
	return cql.Consistency(c)
}

// ToGocqlSerialConsistency converts a Consistency to gocql.Consistency.
//
// In the v2 driver, serial consistency is represented as gocql.Consistency,
// not a separate type like in v1.
//
// Parameters:
//   - c: Consistency level (should be Serial or LocalSerial)
//
// Returns:
//   - gocql.Consistency: The equivalent gocql consistency level
func ToGocqlSerialConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

// FromGocqlSerialConsistency converts a gocql.Consistency (used for serial) to a Consistency.
func FromGocqlSerialConsistency(c gocql.Consistency) cql.Consistency {
	return cql.Consistency(c)
}

// UnwrapSession returns the underlying gocql.Session from a v2 Session adapter.
//
// This is useful when you need direct access to the underlying gocql session
// for operations not exposed by the adapter interface.
//
// Example:
//
//	gocqlSession := v2.UnwrapSession(session)
//	keyspaceMeta, _ := gocqlSession.KeyspaceMetadata("my_keyspace")
func UnwrapSession(s *Session) *gocql.Session {
	return s.session
}
