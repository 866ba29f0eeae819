package operation

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/service"
)

// UpdateOperationBody is the request body for a partial update. Omitted fields are kept.
type UpdateOperationBody struct {
	Type     *string `json:"type,omitempty" doc:"purchase or sale"`
	FuelType *string `json:"fuelType,omitempty" doc:"gasoline, ethanol or diesel"`
	Quantity *string `json:"quantity,omitempty" doc:"Liters as a decimal string"`
	Month    *int    `json:"month,omitempty" doc:"Month 1-12"`
	Year     *int    `json:"year,omitempty" doc:"Year"`
}

// UpdateOperationInput is the Huma input for updating an operation.
type UpdateOperationInput struct {
	ID   string `path:"id" doc:"Operation UUID"`
	Body UpdateOperationBody
}

// UpdateOperationOutput is the Huma output for updating an operation.
type UpdateOperationOutput struct {
	Body OperationBody
}

type operationUpdater interface {
	UpdateOperation(ctx context.Context, userID, id uuid.UUID, patch fuel.Patch) (service.Operation, error)
}

// UpdateOperationHandler handles PUT /v1/operations/{id}.
type UpdateOperationHandler struct {
	OperationService operationUpdater
}

func NewUpdateOperationHandler(svc operationUpdater) *UpdateOperationHandler {
	return &UpdateOperationHandler{OperationService: svc}
}

func (h *UpdateOperationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-operation",
		Method:      http.MethodPut,
		Path:        "/v1/operations/{id}",
		Summary:     "Update operation",
		Description: "Changes the supplied fields. The rate is looked up again only when type, fuel, month or year change.",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

// parseUpdateOperationBody converts the body into a patch. A malformed quantity
// is reported together with the violations of the other supplied fields.
func parseUpdateOperationBody(body UpdateOperationBody, maxYear int) (fuel.Patch, error) {
	patch := fuel.Patch{Month: body.Month, Year: body.Year}
	if body.Type != nil {
		ot := fuel.OperationType(*body.Type)
		patch.Type = &ot
	}
	if body.FuelType != nil {
		ft := fuel.FuelType(*body.FuelType)
		patch.FuelType = &ft
	}
	if body.Quantity == nil {
		return patch, nil
	}

	q, err := decimal.NewFromString(strings.TrimSpace(*body.Quantity))
	if err == nil {
		patch.Quantity = &q
		return patch, nil
	}

	verr := &fuel.ValidationError{}
	verr.Add("quantity", "quantity must be a decimal number", *body.Quantity)
	patch.ValidateInto(verr, maxYear)
	return fuel.Patch{}, verr
}

func (h *UpdateOperationHandler) handle(ctx context.Context, input *UpdateOperationInput) (*UpdateOperationOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, id, err := parseOperationID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parseUpdateOperationBody(input.Body, time.Now().Year())
	if err != nil {
		return nil, apierr.From(err, "")
	}

	stopTimer := logData.AddTiming("updateOperationMs")
	op, err := h.OperationService.UpdateOperation(ctx, userID, id, patch)
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to update operation")
	}
	return &UpdateOperationOutput{Body: OperationBody{Operation: toOperation(op)}}, nil
}
