package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key. A missing row returns nil, nil.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByEmail retrieves a user by email. A missing row returns nil, nil.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("email").EQ(psql.Arg(email))))
}

func (t *UsersTable) findOne(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*User, error) {
	q := psql.Select(
		sm.Columns(columnsOf(userColumns)...),
		sm.From(usersTable),
		where,
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates an active user and returns the stored row.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into(usersTable, "name", "email", "password_hash"),
		im.Values(psql.Arg(create.Name, create.Email, create.PasswordHash)),
		im.Returning(columnsOf(userColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the set fields of update and returns the stored row,
// or nil when no row has the given id.
func (t *UsersTable) Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(usersTable),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Name.Get(); ok {
		mods = append(mods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Email.Get(); ok {
		mods = append(mods, um.SetCol("email").ToArg(v))
	}
	if v, ok := update.PasswordHash.Get(); ok {
		mods = append(mods, um.SetCol("password_hash").ToArg(v))
	}
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columnsOf(userColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
