package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/stats"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// RateService serves the rate table loaded at startup.
type RateService struct {
	table *fuel.RateTable
}

// LoadRateService reads every rate row once and indexes it.
func LoadRateService(ctx context.Context, rates sqlconfig.IRateTable) (*RateService, error) {
	rows, err := rates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}

	converted := make([]fuel.Rate, len(rows))
	for i, row := range rows {
		r := fuel.Rate{
			RateKey: fuel.RateKey{
				Month:         row.Month,
				Year:          row.Year,
				FuelType:      fuel.FuelType(row.FuelType),
				OperationType: fuel.OperationType(row.OperationType),
			},
			UnitPrice: row.UnitPrice,
			TaxRate:   row.TaxRate,
		}
		if !r.FuelType.Valid() || !r.OperationType.Valid() || !fuel.ValidMonth(r.Month) {
			return nil, fmt.Errorf("rate %d has an invalid key %s", row.ID, r.RateKey)
		}
		converted[i] = r
	}

	table, err := fuel.NewRateTable(converted)
	if err != nil {
		return nil, err
	}
	return NewRateService(table), nil
}

func NewRateService(table *fuel.RateTable) *RateService {
	return &RateService{table: table}
}

// Resolver returns the table used to price operations.
func (s *RateService) Resolver() fuel.Resolver {
	return s.table
}

// ListRates returns the rates matching filter.
func (s *RateService) ListRates(ctx context.Context, filter fuel.RateFilter) ([]fuel.Rate, error) {
	if err := validateRateFilter(filter); err != nil {
		return nil, err
	}
	return s.table.List(filter), nil
}

// RateStatistics summarises the rates of one year, DefaultYear when year is 0.
func (s *RateService) RateStatistics(ctx context.Context, year int) (stats.RateSummary, error) {
	if year == 0 {
		year = fuel.DefaultYear
	}
	if !s.table.SupportsYear(year) {
		return stats.RateSummary{}, fmt.Errorf("%w: %d", fuel.ErrUnsupportedYear, year)
	}
	return stats.SummarizeRates(s.table.List(fuel.RateFilter{Year: year})), nil
}

// SupportedYears lists the years with rate data, ascending.
func (s *RateService) SupportedYears() []int {
	return s.table.Years()
}

func validateRateFilter(f fuel.RateFilter) error {
	verr := &fuel.ValidationError{}
	if f.Month != 0 && !fuel.ValidMonth(f.Month) {
		verr.Add("month", "month must be a number between 1 and 12", f.Month)
	}
	if f.FuelType != "" && !f.FuelType.Valid() {
		verr.Add("fuelType", `fuelType must be "gasoline", "ethanol" or "diesel"`, string(f.FuelType))
	}
	if f.OperationType != "" && !f.OperationType.Valid() {
		verr.Add("operationType", `operationType must be "purchase" or "sale"`, string(f.OperationType))
	}
	return verr.OrNil()
}
