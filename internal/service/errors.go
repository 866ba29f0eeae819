package service

import (
	"errors"

	"github.com/carson-networks/fuel-server/internal/operator/actions"
)

var (
	// ErrOperationNotFound covers both a missing operation and one owned by someone else.
	ErrOperationNotFound = actions.ErrOperationNotFound
	ErrEmailInUse        = actions.ErrEmailInUse
	ErrUserNotFound      = actions.ErrUserNotFound

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user is inactive")
)
