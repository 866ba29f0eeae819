package user

import (
	"time"

	"github.com/carson-networks/fuel-server/internal/service"
)

// User is the API response model for a user. It never carries the password hash.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

// SessionBody is the response body of register and login.
type SessionBody struct {
	User      User   `json:"user"`
	Token     string `json:"token" doc:"Bearer token for authenticated endpoints"`
	ExpiresAt string `json:"expiresAt" doc:"RFC3339 token expiry"`
}

// UserBody is the response body wrapping one user.
type UserBody struct {
	User User `json:"user"`
}

func toUser(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func toSession(s service.Session) SessionBody {
	return SessionBody{
		User:      toUser(s.User),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
	}
}
