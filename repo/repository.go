package repo

import (
	"context"
	"fmt"
	"reflect"

	cassandra "github.com/dileepthomas86/spring-data-cassandra"
	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// Repository provides CRUD operations for an entity type over a template.
//
// Every operation validates its arguments before touching the driver, so a
// nil entity or nil id slice never produces a half-executed statement.
//
// Repository is safe for concurrent use.
type Repository[T any, ID comparable] struct {
	template  *cassandra.Template
	info      EntityInfo[T, ID]
	converter Converter[T]
}

// New creates a repository from its collaborators.
//
// Parameters:
//   - template: The template to execute statements on (required)
//   - info: Entity to table mapping metadata (required)
//   - converter: Entity to column translation (required)
//
// Returns:
//   - *Repository[T, ID]: A new repository
//   - error: types.ErrNilArgument when any collaborator is nil
func New[T any, ID comparable](template *cassandra.Template, info EntityInfo[T, ID], converter Converter[T]) (*Repository[T, ID], error) {
	if template == nil || info == nil || converter == nil {
		return nil, types.ErrNilArgument
	}

	return &Repository[T, ID]{template: template, info: info, converter: converter}, nil
}

// Save writes the entity as a full INSERT built from the converter's output,
// preserving column order. Cassandra INSERTs upsert, so Save covers both
// creation and update.
//
// Parameters:
//   - ctx: Context for the execution
//   - entity: The entity to save
//
// Returns:
//   - T: The saved entity, unchanged
//   - error: types.ErrNilArgument on a nil entity, converter or driver error
func (r *Repository[T, ID]) Save(ctx context.Context, entity T) (T, error) {
	var zero T
	if isNil(entity) {
		return zero, types.ErrNilArgument
	}

	columns, err := r.converter.Write(entity)
	if err != nil {
		return zero, err
	}

	stmt, values := insertStatement(r.info.TableName(), columns)
	if err := r.template.Execute(ctx, stmt, values...); err != nil {
		return zero, err
	}

	return entity, nil
}

// SaveAll saves every entity with one statement execution per element,
// returning the entities in input order.
//
// Parameters:
//   - ctx: Context for the executions
//   - entities: The entities to save (required, may be empty)
//
// Returns:
//   - []T: The saved entities in input order
//   - error: types.ErrNilArgument on a nil slice or element, or the first failure
func (r *Repository[T, ID]) SaveAll(ctx context.Context, entities []T) ([]T, error) {
	if entities == nil {
		return nil, types.ErrNilArgument
	}

	saved := make([]T, 0, len(entities))
	for _, entity := range entities {
		s, err := r.Save(ctx, entity)
		if err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}

	return saved, nil
}

// Insert writes the entity. The statement shape is identical to Save since
// Cassandra INSERTs upsert; Insert is kept as a distinct entry point for
// callers that want creation intent in the call site.
func (r *Repository[T, ID]) Insert(ctx context.Context, entity T) (T, error) {
	return r.Save(ctx, entity)
}

// InsertAll inserts every entity with one statement execution per element,
// returning the entities in input order.
func (r *Repository[T, ID]) InsertAll(ctx context.Context, entities []T) ([]T, error) {
	return r.SaveAll(ctx, entities)
}

// FindByID loads the entity with the given id.
//
// Parameters:
//   - ctx: Context for the query
//   - id: The identifier to look up
//
// Returns:
//   - T: The entity, zero when not found
//   - bool: true when a row was found
//   - error: types.ErrNilArgument on a nil id, converter or driver error
func (r *Repository[T, ID]) FindByID(ctx context.Context, id ID) (T, bool, error) {
	var zero T
	if isNil(id) {
		return zero, false, types.ErrNilArgument
	}

	stmt := selectByIDStatement(r.info.TableName(), r.info.IDColumn(), r.converter.Columns())
	rows, err := r.template.QueryRows(ctx, stmt, id)
	if err != nil {
		return zero, false, err
	}

	if !rows.Next() {
		if err := rows.Close(); err != nil {
			return zero, false, err
		}

		return zero, false, nil
	}

	entity, err := r.converter.Read(rows.Scan)
	if err != nil {
		rows.Close()
		return zero, false, err
	}
	if err := rows.Close(); err != nil {
		return zero, false, err
	}

	return entity, true, nil
}

// ExistsByID reports whether a row with the given id exists.
func (r *Repository[T, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	if isNil(id) {
		return false, types.ErrNilArgument
	}

	stmt := existsStatement(r.info.TableName(), r.info.IDColumn())
	rows, err := r.template.QueryRows(ctx, stmt, id)
	if err != nil {
		return false, err
	}

	found := rows.Next()
	if err := rows.Close(); err != nil {
		return false, err
	}

	return found, nil
}

// Count returns the number of rows in the mapped table.
func (r *Repository[T, ID]) Count(ctx context.Context) (int64, error) {
	return cassandra.QueryOne(ctx, r.template, countStatement(r.info.TableName()),
		cassandra.SingleColumn[int64]())
}

// FindAll loads every entity in the mapped table.
func (r *Repository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	stmt := selectAllStatement(r.info.TableName(), r.converter.Columns())

	return r.queryEntities(ctx, stmt)
}

// FindAllByID loads the entities with the given ids using a single
// SELECT ... IN query. Missing ids are skipped silently.
//
// Parameters:
//   - ctx: Context for the query
//   - ids: The identifiers to look up (required, may be empty)
//
// Returns:
//   - []T: The found entities
//   - error: types.ErrNilArgument on a nil slice, converter or driver error
func (r *Repository[T, ID]) FindAllByID(ctx context.Context, ids []ID) ([]T, error) {
	if ids == nil {
		return nil, types.ErrNilArgument
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	stmt := selectInStatement(r.info.TableName(), r.info.IDColumn(), r.converter.Columns(), len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return r.queryEntities(ctx, stmt, args...)
}

// DeleteByID deletes the row with the given id.
func (r *Repository[T, ID]) DeleteByID(ctx context.Context, id ID) error {
	if isNil(id) {
		return types.ErrNilArgument
	}

	return r.template.Execute(ctx, deleteStatement(r.info.TableName(), r.info.IDColumn()), id)
}

// Delete resolves the entity's id and deletes the corresponding row.
//
// Parameters:
//   - ctx: Context for the execution
//   - entity: The entity to delete
//
// Returns:
//   - error: types.ErrNilArgument on a nil entity, types.ErrMissingID naming
//     the entity type when the id cannot be resolved, or driver error
func (r *Repository[T, ID]) Delete(ctx context.Context, entity T) error {
	if isNil(entity) {
		return types.ErrNilArgument
	}

	id, ok := r.info.ID(entity)
	if !ok {
		return fmt.Errorf("%w: %T", types.ErrMissingID, entity)
	}

	return r.DeleteByID(ctx, id)
}

// DeleteAllOf deletes every given entity, one delete per element.
func (r *Repository[T, ID]) DeleteAllOf(ctx context.Context, entities []T) error {
	if entities == nil {
		return types.ErrNilArgument
	}

	for _, entity := range entities {
		if err := r.Delete(ctx, entity); err != nil {
			return err
		}
	}

	return nil
}

// DeleteAll removes every row from the mapped table with a single TRUNCATE,
// regardless of row count.
func (r *Repository[T, ID]) DeleteAll(ctx context.Context) error {
	return r.template.Execute(ctx, truncateStatement(r.info.TableName()))
}

// queryEntities runs a SELECT and converts every row.
func (r *Repository[T, ID]) queryEntities(ctx context.Context, stmt string, args ...any) ([]T, error) {
	rows, err := r.template.QueryRows(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}

	entities := []T{}
	for rows.Next() {
		entity, err := r.converter.Read(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, err
		}
		entities = append(entities, entity)
	}

	if err := rows.Close(); err != nil {
		return nil, err
	}

	return entities, nil
}

// isNil reports whether v is nil, including typed nils carried in
// pointer, interface, map, slice, func, or channel values.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
