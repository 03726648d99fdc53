// Package v2 provides an adapter for the Apache Cassandra gocql driver v2.x
// (github.com/apache/cassandra-gocql-driver/v2).
//
// This adapter wraps v2 sessions, queries, prepared statements, and iterators
// to implement the driver-neutral CQL interfaces. Unlike the v1 adapter, the
// v2 driver exposes native context-aware execution methods, so no context
// plumbing is needed.
//
// # Usage
//
//	import (
//	    gocql "github.com/apache/cassandra-gocql-driver/v2"
//	    "github.com/dileepthomas86/spring-data-cassandra/adapter/cql/v2"
//	)
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session := v2.NewSession(gocqlSession)
//	tmpl, err := cassandra.NewTemplate(session,
//	    cassandra.WithErrorTranslator(v2.ErrorTranslator()),
//	)
//
// # Thread Safety
//
// All adapter types are safe for concurrent use, matching the driver's
// thread safety guarantees.
package v2
