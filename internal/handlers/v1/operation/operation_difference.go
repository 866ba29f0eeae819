package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/service"
	"github.com/carson-networks/fuel-server/internal/stats"
)

// DifferenceInput is the Huma input for the sales/purchases difference.
type DifferenceInput struct {
	FilterParams
}

// DifferenceBody is the response body for the difference.
type DifferenceBody struct {
	Difference Difference `json:"difference"`
}

// DifferenceOutput is the Huma output for the difference.
type DifferenceOutput struct {
	Body DifferenceBody
}

type differenceReader interface {
	Difference(ctx context.Context, userID uuid.UUID, filter service.OperationFilter) (stats.Difference, error)
}

// DifferenceHandler handles GET /v1/operations/difference.
type DifferenceHandler struct {
	OperationService differenceReader
}

func NewDifferenceHandler(svc differenceReader) *DifferenceHandler {
	return &DifferenceHandler{OperationService: svc}
}

func (h *DifferenceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "operation-difference",
		Method:      http.MethodGet,
		Path:        "/v1/operations/difference",
		Summary:     "Sales minus purchases",
		Description: "Compares total sales against total purchases. The type filter is ignored.",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *DifferenceHandler) handle(ctx context.Context, input *DifferenceInput) (*DifferenceOutput, error) {
	userID, filter, err := parseFilteredRequest(ctx, input.FilterParams)
	if err != nil {
		return nil, err
	}

	diff, err := h.OperationService.Difference(ctx, userID, filter)
	if err != nil {
		return nil, apierr.From(err, "failed to compute difference")
	}
	return &DifferenceOutput{Body: DifferenceBody{Difference: toDifference(diff)}}, nil
}
