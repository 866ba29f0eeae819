package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
)

// DeleteOperationOutput is the Huma output for deleting an operation.
type DeleteOperationOutput struct {
	Status int
}

type operationDeleter interface {
	DeleteOperation(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteOperationHandler handles DELETE /v1/operations/{id}.
type DeleteOperationHandler struct {
	OperationService operationDeleter
}

func NewDeleteOperationHandler(svc operationDeleter) *DeleteOperationHandler {
	return &DeleteOperationHandler{OperationService: svc}
}

func (h *DeleteOperationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-operation",
		Method:      http.MethodDelete,
		Path:        "/v1/operations/{id}",
		Summary:     "Delete operation",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *DeleteOperationHandler) handle(ctx context.Context, input *OperationIDInput) (*DeleteOperationOutput, error) {
	userID, id, err := parseOperationID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.OperationService.DeleteOperation(ctx, userID, id); err != nil {
		return nil, apierr.From(err, "failed to delete operation")
	}
	return &DeleteOperationOutput{Status: http.StatusNoContent}, nil
}
