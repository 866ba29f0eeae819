package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

const usersTable = "users"

var userColumns = []string{
	"id", "name", "email", "password_hash", "is_active", "created_at", "updated_at",
}

// User represents a users row.
type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// UserCreate is the input for inserting a user.
type UserCreate struct {
	Name         string
	Email        string
	PasswordHash string
}

// UserUpdate holds the profile columns to change.
type UserUpdate struct {
	Name         omit.Val[string]
	Email        omit.Val[string]
	PasswordHash omit.Val[string]
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error)
}
