package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

func storedUser(t *testing.T, email, password string, active bool) *sqlconfig.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &sqlconfig.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Ana Souza",
		Email:        email,
		PasswordHash: hash,
		IsActive:     active,
	}
}

// -- Register tests --

func TestRegister_NormalisesAndIssuesToken(t *testing.T) {
	svc, deps := newTestUserService(t)

	deps.users.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(nil, nil)
	deps.users.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.UserCreate) bool {
		return c.Name == "Ana Souza" && c.Email == "ana@example.com" && auth.CheckPassword(c.PasswordHash, "secret1")
	})).RunAndReturn(func(_ context.Context, c *sqlconfig.UserCreate) (*sqlconfig.User, error) {
		return &sqlconfig.User{ID: uuid.Must(uuid.NewV4()), Name: c.Name, Email: c.Email, PasswordHash: c.PasswordHash, IsActive: true}, nil
	})

	session, err := svc.Register(context.Background(), Registration{Name: "  Ana Souza ", Email: " Ana@Example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", session.User.Email)
	assert.True(t, session.User.IsActive)
	userID, err := deps.tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)
}

func TestRegister_ReportsEveryInvalidField(t *testing.T) {
	svc, deps := newTestUserService(t)

	_, err := svc.Register(context.Background(), Registration{Name: "A", Email: "not-an-email", Password: "123"})

	var verr *fuel.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, 0, deps.processor.calls)
}

func TestRegister_EmailInUse(t *testing.T) {
	svc, deps := newTestUserService(t)
	deps.users.EXPECT().FindByEmail(mock.Anything, "ana@example.com").
		Return(storedUser(t, "ana@example.com", "secret1", true), nil)

	_, err := svc.Register(context.Background(), Registration{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

// -- Login tests --

func TestLogin_Success(t *testing.T) {
	svc, deps := newTestUserService(t)
	user := storedUser(t, "ana@example.com", "secret1", true)
	deps.users.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(user, nil)

	session, err := svc.Login(context.Background(), "ANA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.User.ID)
	assert.NotEmpty(t, session.Token)
}

func TestLogin_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	svc, deps := newTestUserService(t)
	deps.users.EXPECT().FindByEmail(mock.Anything, "ana@example.com").
		Return(storedUser(t, "ana@example.com", "secret1", true), nil)
	deps.users.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, nil)

	_, err := svc.Login(context.Background(), "ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, deps := newTestUserService(t)
	deps.users.EXPECT().FindByEmail(mock.Anything, "ana@example.com").
		Return(storedUser(t, "ana@example.com", "secret1", false), nil)

	_, err := svc.Login(context.Background(), "ana@example.com", "secret1")
	assert.ErrorIs(t, err, ErrUserInactive)
}

// -- Profile tests --

func TestProfile_NotFound(t *testing.T) {
	svc, deps := newTestUserService(t)
	id := uuid.Must(uuid.NewV4())
	deps.users.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	_, err := svc.Profile(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_OnlySuppliedFields(t *testing.T) {
	svc, deps := newTestUserService(t)
	user := storedUser(t, "ana@example.com", "secret1", true)
	name := " Ana Lima "

	deps.users.EXPECT().Update(mock.Anything, user.ID, mock.MatchedBy(func(u *sqlconfig.UserUpdate) bool {
		return u.Name.GetOr("") == "Ana Lima" && u.Email.IsUnset() && u.PasswordHash.IsUnset()
	})).RunAndReturn(func(_ context.Context, _ uuid.UUID, u *sqlconfig.UserUpdate) (*sqlconfig.User, error) {
		updated := *user
		updated.Name = u.Name.MustGet()
		return &updated, nil
	})

	updated, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
}

func TestUpdateProfile_EmailTakenByAnotherUser(t *testing.T) {
	svc, deps := newTestUserService(t)
	other := storedUser(t, "bia@example.com", "secret1", true)
	email := "BIA@example.com"
	deps.users.EXPECT().FindByEmail(mock.Anything, "bia@example.com").Return(other, nil)

	_, err := svc.UpdateProfile(context.Background(), uuid.Must(uuid.NewV4()), ProfileUpdate{Email: &email})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestUpdateProfile_HashesNewPassword(t *testing.T) {
	svc, deps := newTestUserService(t)
	user := storedUser(t, "ana@example.com", "secret1", true)
	password := "new-secret"

	deps.users.EXPECT().Update(mock.Anything, user.ID, mock.MatchedBy(func(u *sqlconfig.UserUpdate) bool {
		hash, ok := u.PasswordHash.Get()
		return ok && hash != password && auth.CheckPassword(hash, password)
	})).Return(user, nil)

	_, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{Password: &password})
	require.NoError(t, err)
}
