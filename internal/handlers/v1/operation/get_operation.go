package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/service"
)

// OperationIDInput is the Huma input for endpoints addressing one operation.
type OperationIDInput struct {
	ID string `path:"id" doc:"Operation UUID"`
}

// GetOperationOutput is the Huma output for fetching an operation.
type GetOperationOutput struct {
	Body OperationBody
}

type operationGetter interface {
	GetOperation(ctx context.Context, userID, id uuid.UUID) (service.Operation, error)
}

// GetOperationHandler handles GET /v1/operations/{id}.
type GetOperationHandler struct {
	OperationService operationGetter
}

func NewGetOperationHandler(svc operationGetter) *GetOperationHandler {
	return &GetOperationHandler{OperationService: svc}
}

func (h *GetOperationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-operation",
		Method:      http.MethodGet,
		Path:        "/v1/operations/{id}",
		Summary:     "Get operation",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

// parseOperationID resolves the caller and the addressed operation.
// A malformed id cannot name an existing operation, so it is reported as not found.
func parseOperationID(ctx context.Context, raw string) (userID, id uuid.UUID, err error) {
	userID, err = auth.UserIDFromContext(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, apierr.From(err, "")
	}
	id, err = uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, uuid.Nil, apierr.From(service.ErrOperationNotFound, "")
	}
	return userID, id, nil
}

func (h *GetOperationHandler) handle(ctx context.Context, input *OperationIDInput) (*GetOperationOutput, error) {
	userID, id, err := parseOperationID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	op, err := h.OperationService.GetOperation(ctx, userID, id)
	if err != nil {
		return nil, apierr.From(err, "failed to get operation")
	}
	return &GetOperationOutput{Body: OperationBody{Operation: toOperation(op)}}, nil
}
