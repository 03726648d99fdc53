// Package keyspace builds keyspace DDL statements.
//
// Specifications accumulate options fluently and render exact CQL text:
//
//	stmt, err := keyspace.Alter("app").
//	    With(keyspace.NetworkTopologyStrategy(map[string]int{"dc1": 3, "dc2": 2})).
//	    DurableWrites(true).
//	    CQL()
//	// ALTER KEYSPACE app WITH replication = {'class': 'NetworkTopologyStrategy',
//	// 'dc1': 3, 'dc2': 2} AND durable_writes = true
//
// CREATE and DROP variants support IF NOT EXISTS / IF EXISTS guards. The
// rendered statements execute through a template like any other CQL:
//
//	stmt, _ := keyspace.Create("app").IfNotExists().
//	    With(keyspace.SimpleStrategy(1)).CQL()
//	err := tmpl.Execute(ctx, stmt)
//
// Keyspace names that are not plain lower-case identifiers, or that collide
// with CQL reserved words, are double-quoted automatically.
package keyspace
