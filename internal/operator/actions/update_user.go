package actions

import (
	"context"
	"errors"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// ErrUserNotFound is returned when the user row no longer exists.
var ErrUserNotFound = errors.New("user not found")

type UpdateUser struct {
	ID           uuid.UUID
	Name         omit.Val[string]
	Email        omit.Val[string]
	PasswordHash omit.Val[string]

	Result *sqlconfig.User

	IAction
}

func (u *UpdateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if email, ok := u.Email.Get(); ok {
		existing, err := writer.Users.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != u.ID {
			return ErrEmailInUse
		}
	}

	row, err := writer.Users.Update(ctx, u.ID, &sqlconfig.UserUpdate{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	})
	if err != nil {
		return mapUniqueViolation(err)
	}
	if row == nil {
		return ErrUserNotFound
	}

	u.Result = row
	return nil
}
