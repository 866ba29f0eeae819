package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// User is an authenticated principal. The password hash never leaves storage.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is a user together with a freshly issued access token.
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

// Registration is the input for creating a user.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdate holds the profile fields to change. Nil fields are kept.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

func userFromRow(row *sqlconfig.User) User {
	return User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
