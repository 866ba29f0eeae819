package rate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/stats"
)

// RateStatisticsInput is the Huma input for rate statistics.
type RateStatisticsInput struct {
	Year int `query:"year" doc:"Year, defaults to 2024"`
}

// RateStatisticsBody is the response body for rate statistics.
type RateStatisticsBody struct {
	Statistics RateStatistics `json:"statistics"`
}

// RateStatisticsOutput is the Huma output for rate statistics.
type RateStatisticsOutput struct {
	Body RateStatisticsBody
}

type rateSummarizer interface {
	RateStatistics(ctx context.Context, year int) (stats.RateSummary, error)
}

// RateStatisticsHandler handles GET /v1/rates/statistics.
type RateStatisticsHandler struct {
	RateService rateSummarizer
}

func NewRateStatisticsHandler(svc rateSummarizer) *RateStatisticsHandler {
	return &RateStatisticsHandler{RateService: svc}
}

func (h *RateStatisticsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rate-statistics",
		Method:      http.MethodGet,
		Path:        "/v1/rates/statistics",
		Summary:     "Rate statistics",
		Description: "Average unit price and tax rate of one year, overall and by fuel and operation type.",
		Tags:        []string{"Rates"},
	}, h.handle)
}

func (h *RateStatisticsHandler) handle(ctx context.Context, input *RateStatisticsInput) (*RateStatisticsOutput, error) {
	year := input.Year
	if year == 0 {
		year = fuel.DefaultYear
	}

	summary, err := h.RateService.RateStatistics(ctx, year)
	if err != nil {
		return nil, apierr.From(err, "failed to compute rate statistics")
	}
	return &RateStatisticsOutput{Body: RateStatisticsBody{Statistics: toRateStatistics(year, summary)}}, nil
}
