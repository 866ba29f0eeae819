package operation

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/service"
)

// ReportInput is the Huma input for the operations report.
type ReportInput struct {
	FilterParams
}

// ReportBody is the response body of the operations report.
type ReportBody struct {
	Operations  []Operation `json:"operations"`
	Pagination  Pagination  `json:"pagination"`
	Statistics  Statistics  `json:"statistics"`
	Difference  Difference  `json:"difference"`
	Filters     FilterEcho  `json:"filters"`
	GeneratedAt string      `json:"generatedAt" doc:"RFC3339 generation time"`
}

// ReportOutput is the Huma output for the operations report.
type ReportOutput struct {
	Body ReportBody
}

type reportBuilder interface {
	Report(ctx context.Context, userID uuid.UUID, filter service.OperationFilter) (service.Report, error)
}

// ReportHandler handles GET /v1/operations/report.
type ReportHandler struct {
	OperationService reportBuilder
}

func NewReportHandler(svc reportBuilder) *ReportHandler {
	return &ReportHandler{OperationService: svc}
}

func (h *ReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "operation-report",
		Method:      http.MethodGet,
		Path:        "/v1/operations/report",
		Summary:     "Operations report",
		Description: "A page of operations together with statistics and the difference over every matching operation.",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ReportHandler) handle(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	userID, filter, err := parseFilteredRequest(ctx, input.FilterParams)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("reportMs")
	report, err := h.OperationService.Report(ctx, userID, filter)
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to generate report")
	}

	return &ReportOutput{Body: ReportBody{
		Operations:  toOperations(report.Operations),
		Pagination:  toPagination(report.Pagination),
		Statistics:  toStatistics(report.Statistics),
		Difference:  toDifference(report.Difference),
		Filters:     toFilterEcho(report.Filter),
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
	}}, nil
}
