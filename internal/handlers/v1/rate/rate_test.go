package rate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/stats"
)

type mockRateService struct {
	mock.Mock
}

func (m *mockRateService) ListRates(ctx context.Context, filter fuel.RateFilter) ([]fuel.Rate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fuel.Rate), args.Error(1)
}

func (m *mockRateService) RateStatistics(ctx context.Context, year int) (stats.RateSummary, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(stats.RateSummary), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockRateService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListRatesHandler(svc).Register(api)
	NewRateStatisticsHandler(svc).Register(api)
	return api
}

var gasolineJanuary = fuel.Rate{
	RateKey:   fuel.RateKey{Month: 1, Year: 2024, FuelType: fuel.FuelTypeGasoline, OperationType: fuel.OperationTypePurchase},
	UnitPrice: decimal.RequireFromString("5.92"),
	TaxRate:   decimal.RequireFromString("17.2"),
}

func TestHTTP_ListRates_PassesFilter(t *testing.T) {
	svc := new(mockRateService)
	svc.On("ListRates", mock.Anything, fuel.RateFilter{Month: 1, FuelType: fuel.FuelTypeGasoline}).
		Return([]fuel.Rate{gasolineJanuary}, nil)

	resp := newTestAPI(t, svc).Get("/v1/rates?month=1&fuelType=gasoline")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListRatesBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Rates, 1)
	assert.Equal(t, Rate{Month: 1, Year: 2024, FuelType: "gasoline", OperationType: "purchase", UnitPrice: "5.92", TaxRate: "17.20"}, body.Rates[0])
}

func TestHTTP_ListRates_InvalidFilter(t *testing.T) {
	svc := new(mockRateService)
	verr := &fuel.ValidationError{}
	verr.Add("month", "month must be a number between 1 and 12", 13)
	svc.On("ListRates", mock.Anything, mock.Anything).Return(nil, verr)

	resp := newTestAPI(t, svc).Get("/v1/rates?month=13")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_RateStatistics_DefaultsYear(t *testing.T) {
	svc := new(mockRateService)
	svc.On("RateStatistics", mock.Anything, fuel.DefaultYear).Return(stats.SummarizeRates([]fuel.Rate{gasolineJanuary}), nil)

	resp := newTestAPI(t, svc).Get("/v1/rates/statistics")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RateStatisticsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2024, body.Statistics.Year)
	assert.Equal(t, 1, body.Statistics.TotalRates)
	assert.Equal(t, "5.92", body.Statistics.ByFuelType["gasoline"].AveragePrice)
}

func TestHTTP_RateStatistics_UnsupportedYear(t *testing.T) {
	svc := new(mockRateService)
	svc.On("RateStatistics", mock.Anything, 2025).Return(stats.RateSummary{}, fmt.Errorf("%w: 2025", fuel.ErrUnsupportedYear))

	resp := newTestAPI(t, svc).Get("/v1/rates/statistics?year=2025")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
