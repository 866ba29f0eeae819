package service

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/operator/actions"
	"github.com/carson-networks/fuel-server/internal/storage"
)

const (
	minNameLength     = 2
	maxNameLength     = 100
	minPasswordLength = 6
)

// UserService handles registration, login and profile management.
type UserService struct {
	storage   *storage.Storage
	processor ActionProcessor
	tokens    *auth.Tokens
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, processor ActionProcessor, tokens *auth.Tokens) *UserService {
	return &UserService{storage: store, processor: processor, tokens: tokens}
}

// Register creates an active user and signs them in.
func (s *UserService) Register(ctx context.Context, reg Registration) (Session, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = normalizeEmail(reg.Email)

	verr := &fuel.ValidationError{}
	validateName(verr, reg.Name)
	validateEmail(verr, reg.Email)
	validatePassword(verr, reg.Password)
	if err := verr.OrNil(); err != nil {
		return Session{}, err
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return Session{}, err
	}

	action := &actions.CreateUser{Name: reg.Name, Email: reg.Email, PasswordHash: hash}
	if err := s.processor.Process(ctx, action); err != nil {
		return Session{}, err
	}
	return s.session(userFromRow(action.Result))
}

// Login checks the credentials and issues a new token.
func (s *UserService) Login(ctx context.Context, email, password string) (Session, error) {
	row, err := s.storage.Users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return Session{}, err
	}
	if row == nil || !auth.CheckPassword(row.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}
	if !row.IsActive {
		return Session{}, ErrUserInactive
	}
	return s.session(userFromRow(row))
}

// Profile returns the active user userID.
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (User, error) {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	if row == nil {
		return User{}, ErrUserNotFound
	}
	if !row.IsActive {
		return User{}, ErrUserInactive
	}
	return userFromRow(row), nil
}

// UpdateProfile changes the supplied profile fields of userID.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (User, error) {
	action := &actions.UpdateUser{ID: userID}
	verr := &fuel.ValidationError{}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		validateName(verr, name)
		action.Name = omit.From(name)
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		validateEmail(verr, email)
		action.Email = omit.From(email)
	}
	if update.Password != nil {
		validatePassword(verr, *update.Password)
	}
	if err := verr.OrNil(); err != nil {
		return User{}, err
	}

	if update.Password != nil {
		hash, err := auth.HashPassword(*update.Password)
		if err != nil {
			return User{}, err
		}
		action.PasswordHash = omit.From(hash)
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return User{}, err
	}
	return userFromRow(action.Result), nil
}

func (s *UserService) session(user User) (Session, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(verr *fuel.ValidationError, name string) {
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		verr.Add("name", "name must be between 2 and 100 characters", name)
	}
}

func validateEmail(verr *fuel.ValidationError, email string) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		verr.Add("email", "email must be a valid address", email)
	}
}

func validatePassword(verr *fuel.ValidationError, password string) {
	if utf8.RuneCountInString(password) < minPasswordLength {
		verr.Add("password", "password must have at least 6 characters", nil)
	}
}
