package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/service"
)

// ListOperationsInput is the Huma input for listing operations.
type ListOperationsInput struct {
	FilterParams
}

// ListOperationsResponseBody is the response body for listing operations.
type ListOperationsResponseBody struct {
	Operations []Operation `json:"operations" doc:"Page of operations, newest first"`
	Pagination Pagination  `json:"pagination"`
}

// ListOperationsOutput is the Huma output for listing operations.
type ListOperationsOutput struct {
	Body ListOperationsResponseBody
}

// operationLister is the interface for listing operations.
type operationLister interface {
	ListOperations(ctx context.Context, userID uuid.UUID, filter service.OperationFilter) (service.OperationPage, error)
}

// ListOperationsHandler handles GET /v1/operations.
type ListOperationsHandler struct {
	OperationService operationLister
}

// NewListOperationsHandler creates a new ListOperationsHandler.
func NewListOperationsHandler(svc operationLister) *ListOperationsHandler {
	return &ListOperationsHandler{OperationService: svc}
}

// Register registers the list operations endpoint with the Huma API.
func (h *ListOperationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-operations",
		Method:      http.MethodGet,
		Path:        "/v1/operations",
		Summary:     "List operations",
		Description: "Returns a page of the caller's operations filtered by month, year, type and fuel.",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

// parseFilteredRequest resolves the caller and the filter shared by every
// filtered operations endpoint.
func parseFilteredRequest(ctx context.Context, params FilterParams) (uuid.UUID, service.OperationFilter, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return uuid.Nil, service.OperationFilter{}, apierr.From(err, "")
	}
	filter, err := parseFilterParams(params)
	if err != nil {
		return uuid.Nil, service.OperationFilter{}, apierr.From(err, "")
	}
	return userID, filter, nil
}

func (h *ListOperationsHandler) handle(ctx context.Context, input *ListOperationsInput) (*ListOperationsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, filter, err := parseFilteredRequest(ctx, input.FilterParams)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listOperationsMs")
	page, err := h.OperationService.ListOperations(ctx, userID, filter)
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to list operations")
	}

	logData.AddData("operationCount", len(page.Operations))
	return &ListOperationsOutput{Body: ListOperationsResponseBody{
		Operations: toOperations(page.Operations),
		Pagination: toPagination(page.Pagination),
	}}, nil
}
