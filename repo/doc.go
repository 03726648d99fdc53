// Package repo provides generic CRUD repositories over a template.
//
// A repository is assembled from three collaborators: a [EntityInfo]
// describing the table mapping, a [Converter] translating entities to and
// from columns, and the template executing the statements.
//
//	type User struct {
//	    ID   gocql.UUID
//	    Name string
//	}
//
//	type userInfo struct{}
//
//	func (userInfo) TableName() string { return "users" }
//	func (userInfo) IDColumn() string  { return "id" }
//	func (userInfo) ID(u User) (gocql.UUID, bool) {
//	    return u.ID, u.ID != (gocql.UUID{})
//	}
//
//	type userConverter struct{}
//
//	func (userConverter) Columns() []string { return []string{"id", "name"} }
//	func (userConverter) Write(u User) ([]repo.ColumnValue, error) {
//	    return []repo.ColumnValue{{"id", u.ID}, {"name", u.Name}}, nil
//	}
//	func (userConverter) Read(scan func(dest ...any) error) (User, error) {
//	    var u User
//	    err := scan(&u.ID, &u.Name)
//	    return u, err
//	}
//
//	users, err := repo.New[User, gocql.UUID](tmpl, userInfo{}, userConverter{})
//
// Save issues a full INSERT built from the converter's column order, and
// since Cassandra INSERTs upsert it covers updates too. DeleteAll truncates
// the table in a single statement; the per-entity variants delete by
// resolved id and fail with types.ErrMissingID when an entity carries none.
package repo
