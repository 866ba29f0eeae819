package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/logging"
)

// SecurityScheme is the name of the bearer scheme in the OpenAPI document.
const SecurityScheme = "bearer"

// ErrUnauthenticated is returned when a request carries no authenticated user.
var ErrUnauthenticated = errors.New("user not authenticated")

type userIDKey struct{}

// BearerSecurity is the requirement attached to operations that need a user.
var BearerSecurity = []map[string][]string{{SecurityScheme: {}}}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return userID, nil
}

// Middleware verifies the bearer token of every operation that declares
// the bearer security requirement and stores the user id in the context.
func Middleware(api huma.API, tokens *Tokens) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresBearer(ctx.Operation()) {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || len(tokenStr) == 0 {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			logging.GetLogData(ctx.Context()).AddData("authError", err.Error())
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(huma.WithContext(ctx, WithUserID(ctx.Context(), userID)))
	}
}

func requiresBearer(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[SecurityScheme]; ok {
			return true
		}
	}
	return false
}
