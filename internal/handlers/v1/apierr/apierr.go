// Package apierr maps domain errors to huma HTTP errors.
package apierr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/service"
)

// From converts err into a huma status error. fallback is the message of
// the 500 returned for errors without a dedicated mapping.
func From(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var verr *fuel.ValidationError
	switch {
	case errors.As(err, &verr):
		return validation(verr)
	case errors.Is(err, fuel.ErrUnsupportedYear):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, fuel.ErrRateNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOperationNotFound):
		return huma.NewError(http.StatusNotFound, "operation not found")
	case errors.Is(err, service.ErrUserNotFound):
		return huma.NewError(http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.NewError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrUserInactive):
		return huma.NewError(http.StatusUnauthorized, "user is inactive")
	case errors.Is(err, auth.ErrUnauthenticated):
		return huma.NewError(http.StatusUnauthorized, "user not authenticated")
	case errors.Is(err, service.ErrEmailInUse):
		return huma.NewError(http.StatusConflict, "email already in use")
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}

// validation reports one detail per invalid field.
func validation(verr *fuel.ValidationError) error {
	details := make([]error, len(verr.Fields))
	for i, f := range verr.Fields {
		details[i] = &huma.ErrorDetail{
			Message:  f.Message,
			Location: f.Field,
			Value:    f.Value,
		}
	}
	return huma.NewError(http.StatusBadRequest, "invalid input", details...)
}
