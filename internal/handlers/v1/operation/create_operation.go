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

// OperationInputBody is the request body for creating or previewing an operation.
type OperationInputBody struct {
	Type     string `json:"type" doc:"purchase or sale"`
	FuelType string `json:"fuelType" doc:"gasoline, ethanol or diesel"`
	Quantity string `json:"quantity" doc:"Liters as a decimal string, up to 3 decimal places"`
	Month    int    `json:"month" doc:"Month 1-12"`
	Year     int    `json:"year,omitempty" doc:"Year, defaults to 2024"`
}

// CreateOperationInput is the Huma input for creating an operation.
type CreateOperationInput struct {
	Body OperationInputBody
}

// CreateOperationOutput is the Huma output for creating an operation.
type CreateOperationOutput struct {
	Status int
	Body   OperationBody
}

// operationCreator is the interface for creating operations.
type operationCreator interface {
	CreateOperation(ctx context.Context, userID uuid.UUID, in fuel.Input) (service.Operation, error)
}

// CreateOperationHandler handles POST /v1/operations.
type CreateOperationHandler struct {
	OperationService operationCreator
}

// NewCreateOperationHandler creates a new CreateOperationHandler.
func NewCreateOperationHandler(svc operationCreator) *CreateOperationHandler {
	return &CreateOperationHandler{OperationService: svc}
}

// Register registers the create operation endpoint with the Huma API.
func (h *CreateOperationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-operation",
		Method:      http.MethodPost,
		Path:        "/v1/operations",
		Summary:     "Create operation",
		Description: "Prices a purchase or sale against the rate table and stores it.",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

// parseOperationInput converts the request body into a valuation input.
// A malformed quantity is reported together with every other shape violation.
func parseOperationInput(body OperationInputBody, maxYear int) (fuel.Input, error) {
	in := fuel.Input{
		Type:     fuel.OperationType(body.Type),
		FuelType: fuel.FuelType(body.FuelType),
		Month:    body.Month,
		Year:     body.Year,
	}
	quantity, err := decimal.NewFromString(strings.TrimSpace(body.Quantity))
	if err == nil {
		in.Quantity = quantity
		return in, nil
	}

	verr := &fuel.ValidationError{}
	verr.Add("quantity", "quantity must be a decimal number", body.Quantity)
	in.WithDefaults().ValidateInto(verr, maxYear)
	return fuel.Input{}, verr
}

func (h *CreateOperationHandler) handle(ctx context.Context, input *CreateOperationInput) (*CreateOperationOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, apierr.From(err, "")
	}
	in, err := parseOperationInput(input.Body, time.Now().Year())
	if err != nil {
		return nil, apierr.From(err, "")
	}

	stopTimer := logData.AddTiming("createOperationMs")
	op, err := h.OperationService.CreateOperation(ctx, userID, in)
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to create operation")
	}

	logData.AddData("operationID", op.ID.String())
	return &CreateOperationOutput{
		Status: http.StatusCreated,
		Body:   OperationBody{Operation: toOperation(op)},
	}, nil
}
