// Package v1 provides an adapter for gocql v1.x.
//
// This adapter wraps gocql sessions, queries, prepared statements, and
// iterators to implement the driver-neutral CQL interfaces, and adds the
// cluster-level socket configuration and error translation the template
// builds on.
//
// # Installation
//
// Import this package along with gocql v1.x:
//
//	import (
//	    "github.com/gocql/gocql"
//	    "github.com/dileepthomas86/spring-data-cassandra/adapter/cql/v1"
//	)
//
// # Usage
//
// Create a gocql session and wrap it with the v1 adapter:
//
//	cluster := gocql.NewCluster("127.0.0.1", "127.0.0.2")
//	cluster.Keyspace = "my_keyspace"
//	cluster.Consistency = gocql.Quorum
//
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session := v1.NewSession(gocqlSession)
//	tmpl, err := cassandra.NewTemplate(session,
//	    cassandra.WithErrorTranslator(v1.ErrorTranslator()),
//	)
//
// # Socket Options
//
// [SocketOptions] applies optional low-level socket settings to a cluster
// config before the session is created. Only non-nil fields take effect:
//
//	connectTimeout := 5 * time.Second
//	noDelay := true
//	opts := v1.SocketOptions{
//	    ConnectTimeout: &connectTimeout,
//	    TCPNoDelay:     &noDelay,
//	}
//	opts.Apply(cluster)
//
// # Type Conversions
//
// The adapter provides helper functions for converting between this module's
// types and gocql types:
//
//   - [ToGocqlConsistency]: Converts Consistency to gocql.Consistency
//   - [FromGocqlConsistency]: Converts gocql.Consistency to Consistency
//   - [ToGocqlSerialConsistency]: Converts Consistency to gocql.SerialConsistency
//   - [FromGocqlSerialConsistency]: Converts gocql.SerialConsistency to Consistency
//   - [UnwrapSession]: Returns the underlying gocql.Session
//
// # Thread Safety
//
// All adapter types are safe for concurrent use, matching gocql's thread
// safety guarantees.
package v1
