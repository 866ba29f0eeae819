package rate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/logging"
)

// ListRatesInput is the Huma input for listing rates.
type ListRatesInput struct {
	Month         int    `query:"month" doc:"Month 1-12"`
	Year          int    `query:"year" doc:"Year"`
	FuelType      string `query:"fuelType" doc:"gasoline, ethanol or diesel"`
	OperationType string `query:"operationType" doc:"purchase or sale"`
}

// ListRatesBody is the response body for listing rates.
type ListRatesBody struct {
	Rates []Rate `json:"rates" doc:"Newest year and month first"`
}

// ListRatesOutput is the Huma output for listing rates.
type ListRatesOutput struct {
	Body ListRatesBody
}

type rateLister interface {
	ListRates(ctx context.Context, filter fuel.RateFilter) ([]fuel.Rate, error)
}

// ListRatesHandler handles GET /v1/rates.
type ListRatesHandler struct {
	RateService rateLister
}

func NewListRatesHandler(svc rateLister) *ListRatesHandler {
	return &ListRatesHandler{RateService: svc}
}

func (h *ListRatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rates",
		Method:      http.MethodGet,
		Path:        "/v1/rates",
		Summary:     "List rates",
		Description: "Unit prices and tax rates by month, fuel and operation type.",
		Tags:        []string{"Rates"},
	}, h.handle)
}

func (h *ListRatesHandler) handle(ctx context.Context, input *ListRatesInput) (*ListRatesOutput, error) {
	rates, err := h.RateService.ListRates(ctx, fuel.RateFilter{
		Month:         input.Month,
		Year:          input.Year,
		FuelType:      fuel.FuelType(input.FuelType),
		OperationType: fuel.OperationType(input.OperationType),
	})
	if err != nil {
		return nil, apierr.From(err, "failed to list rates")
	}

	logging.GetLogData(ctx).AddData("rateCount", len(rates))
	body := ListRatesBody{Rates: make([]Rate, len(rates))}
	for i, r := range rates {
		body.Rates[i] = toRate(r)
	}
	return &ListRatesOutput{Body: body}, nil
}
