package actions

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// ErrEmailInUse is returned when another user already has the email.
var ErrEmailInUse = errors.New("email already in use")

const uniqueViolation = pq.ErrorCode("23505")

type CreateUser struct {
	Name         string
	Email        string
	PasswordHash string

	Result *sqlconfig.User

	IAction
}

func (c *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Users.FindByEmail(ctx, c.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailInUse
	}

	row, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	})
	if err != nil {
		return mapUniqueViolation(err)
	}

	c.Result = row
	return nil
}

// mapUniqueViolation turns a concurrent insert of the same email into ErrEmailInUse.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrEmailInUse
	}
	return err
}
