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
	"github.com/carson-networks/fuel-server/internal/stats"
)

// StatisticsInput is the Huma input for operation statistics.
type StatisticsInput struct {
	FilterParams
}

// StatisticsBody is the response body for operation statistics.
type StatisticsBody struct {
	Statistics Statistics `json:"statistics"`
}

// StatisticsOutput is the Huma output for operation statistics.
type StatisticsOutput struct {
	Body StatisticsBody
}

type statisticsReader interface {
	Statistics(ctx context.Context, userID uuid.UUID, filter service.OperationFilter) (stats.Summary, error)
}

// StatisticsHandler handles GET /v1/operations/statistics.
type StatisticsHandler struct {
	OperationService statisticsReader
}

func NewStatisticsHandler(svc statisticsReader) *StatisticsHandler {
	return &StatisticsHandler{OperationService: svc}
}

func (h *StatisticsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "operation-statistics",
		Method:      http.MethodGet,
		Path:        "/v1/operations/statistics",
		Summary:     "Operation statistics",
		Description: "Totals and averages over every operation matching the filters. Paging parameters are ignored.",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *StatisticsHandler) handle(ctx context.Context, input *StatisticsInput) (*StatisticsOutput, error) {
	userID, filter, err := parseFilteredRequest(ctx, input.FilterParams)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("statisticsMs")
	summary, err := h.OperationService.Statistics(ctx, userID, filter)
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to compute statistics")
	}
	return &StatisticsOutput{Body: StatisticsBody{Statistics: toStatistics(summary)}}, nil
}
