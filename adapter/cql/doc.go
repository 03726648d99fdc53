// Package cql provides adapter interfaces and implementations for CQL
// (Cassandra Query Language) database drivers.
//
// This package defines the common interfaces that CQL driver adapters must
// implement, allowing the template and repository layers to work with
// different versions of gocql or other CQL drivers.
//
// # Interfaces
//
// The package defines interfaces that mirror the gocql API:
//
//   - Session: Wraps a database session for executing and preparing queries
//   - Query: Represents a CQL query with bind parameters
//   - PreparedStatement: A server-side prepared statement handle
//   - Iter: Iterates over query results
//   - Scanner: database/sql-style row scanning over an Iter
//
// # Adapters
//
// Driver-specific adapters are provided in subpackages:
//
//   - [github.com/dileepthomas86/spring-data-cassandra/adapter/cql/v1]: Adapter for gocql v1.x
//   - [github.com/dileepthomas86/spring-data-cassandra/adapter/cql/v2]: Adapter for apache/cassandra-gocql-driver v2.x
//
// # Usage
//
// Import the appropriate adapter for your gocql version:
//
//	import (
//	    cassandra "github.com/dileepthomas86/spring-data-cassandra"
//	    "github.com/dileepthomas86/spring-data-cassandra/adapter/cql/v1"
//	    "github.com/gocql/gocql"
//	)
//
//	// Create gocql cluster and session
//	cluster := gocql.NewCluster("127.0.0.1")
//	gocqlSession, _ := cluster.CreateSession()
//
//	// Wrap with the adapter
//	session := v1.NewSession(gocqlSession)
//
//	// Use with the template
//	tmpl, _ := cassandra.NewTemplate(session)
package cql
