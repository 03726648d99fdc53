package keyspace

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoOptions indicates an ALTER KEYSPACE with nothing to alter.
	ErrNoOptions = errors.New("cassandra: alter keyspace requires at least one option")

	// ErrNoReplication indicates a CREATE KEYSPACE without replication.
	ErrNoReplication = errors.New("cassandra: create keyspace requires replication")
)

// AlterSpecification builds an ALTER KEYSPACE statement.
//
// Options accumulate fluently; CQL renders the final statement. Altering a
// keyspace with no options is an error since there is nothing to change.
type AlterSpecification struct {
	name          Identifier
	nameErr       error
	replication   Replication
	durableWrites *bool
}

// Alter starts an ALTER KEYSPACE specification for the given keyspace.
//
// Parameters:
//   - name: The keyspace name, quoted automatically when needed
//
// Returns:
//   - *AlterSpecification: A specification builder
func Alter(name string) *AlterSpecification {
	id, err := NewIdentifier(name)

	return &AlterSpecification{name: id, nameErr: err}
}

// With sets the replication option.
func (s *AlterSpecification) With(r Replication) *AlterSpecification {
	s.replication = r
	return s
}

// DurableWrites sets the durable_writes option.
func (s *AlterSpecification) DurableWrites(enabled bool) *AlterSpecification {
	s.durableWrites = &enabled
	return s
}

// Name returns the keyspace identifier the specification targets.
func (s *AlterSpecification) Name() Identifier {
	return s.name
}

// CQL renders the ALTER KEYSPACE statement.
//
// Returns:
//   - string: The statement text
//   - error: Identifier error, or ErrNoOptions when nothing was set
func (s *AlterSpecification) CQL() (string, error) {
	if s.nameErr != nil {
		return "", s.nameErr
	}
	if !s.replication.valid() && s.durableWrites == nil {
		return "", ErrNoOptions
	}

	var sb strings.Builder
	sb.WriteString("ALTER KEYSPACE ")
	sb.WriteString(s.name.CQL())
	sb.WriteString(" WITH ")
	writeOptions(&sb, s.replication, s.durableWrites)

	return sb.String(), nil
}

// CreateSpecification builds a CREATE KEYSPACE statement.
type CreateSpecification struct {
	name          Identifier
	nameErr       error
	ifNotExists   bool
	replication   Replication
	durableWrites *bool
}

// Create starts a CREATE KEYSPACE specification for the given keyspace.
//
// Parameters:
//   - name: The keyspace name, quoted automatically when needed
//
// Returns:
//   - *CreateSpecification: A specification builder
func Create(name string) *CreateSpecification {
	id, err := NewIdentifier(name)

	return &CreateSpecification{name: id, nameErr: err}
}

// IfNotExists makes the statement a no-op when the keyspace already exists.
func (s *CreateSpecification) IfNotExists() *CreateSpecification {
	s.ifNotExists = true
	return s
}

// With sets the replication option.
func (s *CreateSpecification) With(r Replication) *CreateSpecification {
	s.replication = r
	return s
}

// DurableWrites sets the durable_writes option.
func (s *CreateSpecification) DurableWrites(enabled bool) *CreateSpecification {
	s.durableWrites = &enabled
	return s
}

// Name returns the keyspace identifier the specification targets.
func (s *CreateSpecification) Name() Identifier {
	return s.name
}

// CQL renders the CREATE KEYSPACE statement.
//
// Returns:
//   - string: The statement text
//   - error: Identifier error, or ErrNoReplication when replication was not set
func (s *CreateSpecification) CQL() (string, error) {
	if s.nameErr != nil {
		return "", s.nameErr
	}
	if !s.replication.valid() {
		return "", ErrNoReplication
	}

	var sb strings.Builder
	sb.WriteString("CREATE KEYSPACE ")
	if s.ifNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(s.name.CQL())
	sb.WriteString(" WITH ")
	writeOptions(&sb, s.replication, s.durableWrites)

	return sb.String(), nil
}

// DropSpecification builds a DROP KEYSPACE statement.
type DropSpecification struct {
	name     Identifier
	nameErr  error
	ifExists bool
}

// Drop starts a DROP KEYSPACE specification for the given keyspace.
//
// Parameters:
//   - name: The keyspace name, quoted automatically when needed
//
// Returns:
//   - *DropSpecification: A specification builder
func Drop(name string) *DropSpecification {
	id, err := NewIdentifier(name)

	return &DropSpecification{name: id, nameErr: err}
}

// IfExists makes the statement a no-op when the keyspace does not exist.
func (s *DropSpecification) IfExists() *DropSpecification {
	s.ifExists = true
	return s
}

// Name returns the keyspace identifier the specification targets.
func (s *DropSpecification) Name() Identifier {
	return s.name
}

// CQL renders the DROP KEYSPACE statement.
func (s *DropSpecification) CQL() (string, error) {
	if s.nameErr != nil {
		return "", s.nameErr
	}

	var sb strings.Builder
	sb.WriteString("DROP KEYSPACE ")
	if s.ifExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(s.name.CQL())

	return sb.String(), nil
}

// writeOptions renders the WITH clause options joined by AND.
func writeOptions(sb *strings.Builder, replication Replication, durableWrites *bool) {
	wrote := false
	if replication.valid() {
		sb.WriteString("replication = ")
		sb.WriteString(replication.CQL())
		wrote = true
	}
	if durableWrites != nil {
		if wrote {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(sb, "durable_writes = %t", *durableWrites)
	}
}
