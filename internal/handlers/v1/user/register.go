package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/service"
)

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Name     string `json:"name" doc:"Display name, 2-100 characters"`
	Email    string `json:"email" doc:"Login email"`
	Password string `json:"password" doc:"At least 6 characters"`
}

// RegisterInput is the Huma input for registering a user.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registering a user.
type RegisterOutput struct {
	Status int
	Body   SessionBody
}

type registrar interface {
	Register(ctx context.Context, reg service.Registration) (service.Session, error)
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	UserService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{UserService: svc}
}

// Register registers the registration endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register-user",
		Method:      http.MethodPost,
		Path:        "/v1/auth/register",
		Summary:     "Register",
		Description: "Creates an active user and returns it with a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("registerMs")
	session, err := h.UserService.Register(ctx, service.Registration{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to register user")
	}

	logData.AddData("userID", session.User.ID.String())
	return &RegisterOutput{Status: http.StatusCreated, Body: toSession(session)}, nil
}
