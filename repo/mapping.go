package repo

// ColumnValue is one column of an entity paired with its value. Order
// matters: INSERT statements list columns in the order the converter emits
// them.
type ColumnValue struct {
	Column string
	Value  any
}

// EntityInfo describes how an entity type maps onto a table.
//
// T is the entity type, ID its identifier type.
type EntityInfo[T any, ID comparable] interface {
	// TableName returns the mapped table.
	TableName() string

	// IDColumn returns the primary key column.
	IDColumn() string

	// ID extracts the identifier from an entity. The second return is false
	// when the identifier cannot be resolved, e.g. an unset pointer field.
	ID(entity T) (ID, bool)
}

// Converter translates entities to and from column values.
type Converter[T any] interface {
	// Columns returns the column names read by SELECT statements, in the
	// order Read scans them.
	Columns() []string

	// Write renders an entity as ordered column/value pairs for INSERT.
	Write(entity T) ([]ColumnValue, error)

	// Read builds an entity from the current row. The scan function reads
	// the columns returned by Columns, in order.
	Read(scan func(dest ...any) error) (T, error)
}
