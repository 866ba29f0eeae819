package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/service"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, reg service.Registration) (service.Session, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(service.Session), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (service.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(service.Session), args.Error(1)
}

func (m *mockUserService) Profile(ctx context.Context, userID uuid.UUID) (service.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.User), args.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (service.User, error) {
	args := m.Called(ctx, userID, update)
	return args.Get(0).(service.User), args.Error(1)
}

var testUser = service.User{
	ID:       uuid.Must(uuid.FromString("0b7e2f0c-5d1a-4f7e-8a3b-6c9d0e1f2a3b")),
	Name:     "Ana Souza",
	Email:    "ana@example.com",
	IsActive: true,
}

// newTestAPI wires the auth handlers behind the real token middleware.
func newTestAPI(t *testing.T, svc *mockUserService, tokens *auth.Tokens) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.Middleware(api, tokens))

	NewRegisterHandler(svc).Register(api)
	NewLoginHandler(svc).Register(api)
	NewProfileHandler(svc).Register(api)
	return api
}

func bearer(t *testing.T, tokens *auth.Tokens, userID uuid.UUID) string {
	t.Helper()
	token, _, err := tokens.Issue(userID, "ana@example.com")
	require.NoError(t, err)
	return "Authorization: Bearer " + token
}

func TestHTTP_Register_Created(t *testing.T) {
	svc := new(mockUserService)
	tokens := auth.NewTokens("secret", time.Hour)
	svc.On("Register", mock.Anything, service.Registration{Name: "Ana Souza", Email: "ana@example.com", Password: "secret1"}).
		Return(service.Session{User: testUser, Token: "tok", ExpiresAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, nil)

	resp := newTestAPI(t, svc, tokens).Post("/v1/auth/register", RegisterBody{
		Name: "Ana Souza", Email: "ana@example.com", Password: "secret1",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body SessionBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tok", body.Token)
	assert.Equal(t, testUser.ID.String(), body.User.ID)
	assert.NotContains(t, resp.Body.String(), "password")
}

func TestHTTP_Register_Errors(t *testing.T) {
	verr := &fuel.ValidationError{}
	verr.Add("email", "email must be a valid address", "nope")

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", verr, http.StatusBadRequest},
		{"email in use", service.ErrEmailInUse, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockUserService)
			svc.On("Register", mock.Anything, mock.Anything).Return(service.Session{}, tt.err)

			resp := newTestAPI(t, svc, auth.NewTokens("secret", time.Hour)).Post("/v1/auth/register", RegisterBody{
				Name: "Ana", Email: "nope", Password: "secret1",
			})
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestHTTP_Login_InvalidCredentials(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Login", mock.Anything, "ana@example.com", "wrong").Return(service.Session{}, service.ErrInvalidCredentials)

	resp := newTestAPI(t, svc, auth.NewTokens("secret", time.Hour)).Post("/v1/auth/login", LoginBody{
		Email: "ana@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_Profile_RequiresToken(t *testing.T) {
	svc := new(mockUserService)

	resp := newTestAPI(t, svc, auth.NewTokens("secret", time.Hour)).Get("/v1/auth/profile")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "Profile", mock.Anything, mock.Anything)
}

func TestHTTP_Profile_WithToken(t *testing.T) {
	svc := new(mockUserService)
	tokens := auth.NewTokens("secret", time.Hour)
	svc.On("Profile", mock.Anything, testUser.ID).Return(testUser, nil)

	resp := newTestAPI(t, svc, tokens).Get("/v1/auth/profile", bearer(t, tokens, testUser.ID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body UserBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Ana Souza", body.User.Name)
}

func TestHTTP_UpdateProfile(t *testing.T) {
	svc := new(mockUserService)
	tokens := auth.NewTokens("secret", time.Hour)
	renamed := testUser
	renamed.Name = "Ana Lima"
	svc.On("UpdateProfile", mock.Anything, testUser.ID, mock.MatchedBy(func(u service.ProfileUpdate) bool {
		return u.Name != nil && *u.Name == "Ana Lima" && u.Email == nil && u.Password == nil
	})).Return(renamed, nil)

	resp := newTestAPI(t, svc, tokens).Put("/v1/auth/profile", bearer(t, tokens, testUser.ID), map[string]any{"name": "Ana Lima"})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}
