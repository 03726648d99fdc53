// Package cassandra provides a data-access convenience layer over Apache
// Cassandra drivers.
//
// The central type is [Template], which executes CQL against a driver
// session wrapped by one of the adapters in adapter/cql, applies configured
// defaults without overriding explicit per-statement settings, and wraps
// every driver failure in a *types.DataAccessError carrying the task, the
// CQL involved, and an error category matchable with errors.Is.
//
// # Quick Start
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Keyspace = "app"
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gocqlSession.Close()
//
//	tmpl, err := cassandra.NewTemplate(v1.NewSession(gocqlSession),
//	    cassandra.WithConsistency(cassandra.LocalQuorum),
//	    cassandra.WithErrorTranslator(v1.ErrorTranslator()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = tmpl.Execute(ctx, "INSERT INTO users (id, name) VALUES (?, ?)", id, "ada")
//
// # Queries
//
// Map-shaped results come from QueryForMap, QueryForSlice, and QueryRows.
// Typed results come from the generic package functions with a caller
// supplied row mapper:
//
//	users, err := cassandra.Query(ctx, tmpl, "SELECT id, name FROM users",
//	    func(row cassandra.RowScanner) (User, error) {
//	        var u User
//	        err := row.Scan(&u.ID, &u.Name)
//	        return u, err
//	    })
//
// # Statement Settings
//
// A [Statement] carries explicit settings the template never overrides;
// template options like WithConsistency only fill in what the statement
// left unset:
//
//	stmt := cassandra.NewStatement("SELECT * FROM events WHERE day = ?", day).
//	    WithConsistency(cassandra.One).
//	    WithPageSize(500)
//	rows, err := tmpl.QueryRowsStatement(ctx, stmt)
//
// # Streaming
//
// ExecuteStream prepares a statement once and executes it per argument set
// received on a channel; ExecuteStatements does the same for a channel of
// distinct statements. Both emit exactly one result per input in order.
//
// # Repositories
//
// The repo subpackage layers generic CRUD repositories on top of the
// template, and the keyspace subpackage builds keyspace DDL.
package cassandra

import "github.com/dileepthomas86/spring-data-cassandra/types"

// Re-export consistency level constants for convenience.
const (
	Any         = types.Any
	One         = types.One
	Two         = types.Two
	Three       = types.Three
	Quorum      = types.Quorum
	All         = types.All
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)
