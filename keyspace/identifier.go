package keyspace

import (
	"errors"
	"regexp"
	"strings"
)

// maxNameLength is the keyspace name length limit enforced by Cassandra.
const maxNameLength = 48

var (
	// ErrEmptyName indicates an empty keyspace name.
	ErrEmptyName = errors.New("cassandra: keyspace name cannot be empty")

	// ErrNameTooLong indicates a keyspace name over 48 characters.
	ErrNameTooLong = errors.New("cassandra: keyspace name cannot exceed 48 characters")
)

// unquotedNameRegex matches names that can be rendered without quoting.
var unquotedNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// reservedWords holds CQL reserved keywords that must be quoted when used
// as identifiers.
var reservedWords = map[string]struct{}{
	"add": {}, "allow": {}, "alter": {}, "and": {}, "apply": {}, "asc": {},
	"authorize": {}, "batch": {}, "begin": {}, "by": {}, "columnfamily": {},
	"create": {}, "delete": {}, "desc": {}, "describe": {}, "drop": {},
	"entries": {}, "execute": {}, "from": {}, "full": {}, "grant": {},
	"if": {}, "in": {}, "index": {}, "infinity": {}, "insert": {}, "into": {},
	"is": {}, "keyspace": {}, "limit": {}, "materialized": {}, "modify": {},
	"nan": {}, "norecursive": {}, "not": {}, "null": {}, "of": {}, "on": {},
	"or": {}, "order": {}, "primary": {}, "rename": {}, "replace": {},
	"revoke": {}, "schema": {}, "select": {}, "set": {}, "table": {},
	"to": {}, "token": {}, "truncate": {}, "unlogged": {}, "update": {},
	"use": {}, "using": {}, "view": {}, "where": {}, "with": {},
}

// Identifier is a keyspace identifier.
//
// Names made of letters, digits, and underscores, starting with a letter and
// not colliding with a CQL reserved word, are stored lower-cased and
// rendered unquoted, matching how Cassandra folds case. Anything else is
// rendered double-quoted with its case preserved.
type Identifier struct {
	name   string
	quoted bool
}

// NewIdentifier creates a keyspace identifier from the given name.
//
// Parameters:
//   - name: The keyspace name, quoted automatically when needed
//
// Returns:
//   - Identifier: The identifier
//   - error: ErrEmptyName or ErrNameTooLong when the name is unusable
func NewIdentifier(name string) (Identifier, error) {
	if name == "" {
		return Identifier{}, ErrEmptyName
	}
	if len(name) > maxNameLength {
		return Identifier{}, ErrNameTooLong
	}

	lower := strings.ToLower(name)
	if _, reserved := reservedWords[lower]; !reserved && unquotedNameRegex.MatchString(name) {
		return Identifier{name: lower}, nil
	}

	return Identifier{name: name, quoted: true}, nil
}

// Name returns the identifier without quoting.
func (i Identifier) Name() string {
	return i.name
}

// Quoted reports whether the identifier renders double-quoted.
func (i Identifier) Quoted() bool {
	return i.quoted
}

// CQL renders the identifier as it appears in a statement.
func (i Identifier) CQL() string {
	if i.quoted {
		return `"` + strings.ReplaceAll(i.name, `"`, `""`) + `"`
	}

	return i.name
}

// String implements fmt.Stringer.
func (i Identifier) String() string {
	return i.CQL()
}
