package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/service"
)

// ProfileOutput is the Huma output of both profile endpoints.
type ProfileOutput struct {
	Body UserBody
}

// UpdateProfileBody is the request body for changing the profile. Omitted fields are kept.
type UpdateProfileBody struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateProfileInput is the Huma input for changing the profile.
type UpdateProfileInput struct {
	Body UpdateProfileBody
}

type profileService interface {
	Profile(ctx context.Context, userID uuid.UUID) (service.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (service.User, error)
}

// ProfileHandler handles GET and PUT /v1/auth/profile.
type ProfileHandler struct {
	UserService profileService
}

func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{UserService: svc}
}

// Register registers both profile endpoints with the Huma API.
func (h *ProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/auth/profile",
		Summary:     "Get profile",
		Tags:        []string{"Auth"},
		Security:    auth.BearerSecurity,
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/v1/auth/profile",
		Summary:     "Update profile",
		Description: "Changes the supplied name, email or password.",
		Tags:        []string{"Auth"},
		Security:    auth.BearerSecurity,
	}, h.update)
}

func (h *ProfileHandler) get(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, apierr.From(err, "")
	}

	u, err := h.UserService.Profile(ctx, userID)
	if err != nil {
		return nil, apierr.From(err, "failed to load profile")
	}
	return &ProfileOutput{Body: UserBody{User: toUser(u)}}, nil
}

func (h *ProfileHandler) update(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, apierr.From(err, "")
	}

	u, err := h.UserService.UpdateProfile(ctx, userID, service.ProfileUpdate{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, apierr.From(err, "failed to update profile")
	}
	return &ProfileOutput{Body: UserBody{User: toUser(u)}}, nil
}
