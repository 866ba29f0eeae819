package rate

import (
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/stats"
)

// Rate is the API response model for a rate.
type Rate struct {
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	FuelType      string `json:"fuelType"`
	OperationType string `json:"operationType"`
	UnitPrice     string `json:"unitPrice" doc:"Unit price per liter"`
	TaxRate       string `json:"taxRate" doc:"Tax rate in percent"`
}

// RateGroup is the API model of averages over a group of rates.
type RateGroup struct {
	Count          int    `json:"count"`
	AveragePrice   string `json:"averagePrice"`
	AverageTaxRate string `json:"averageTaxRate"`
}

// RateStatistics is the API model of a rate summary.
type RateStatistics struct {
	Year             int                  `json:"year"`
	TotalRates       int                  `json:"totalRates"`
	AverageTaxRate   string               `json:"averageTaxRate"`
	AverageUnitPrice string               `json:"averageUnitPrice"`
	ByFuelType       map[string]RateGroup `json:"byFuelType"`
	ByOperationType  map[string]RateGroup `json:"byOperationType"`
}

func toRate(r fuel.Rate) Rate {
	return Rate{
		Month:         r.Month,
		Year:          r.Year,
		FuelType:      string(r.FuelType),
		OperationType: string(r.OperationType),
		UnitPrice:     r.UnitPrice.StringFixed(2),
		TaxRate:       r.TaxRate.StringFixed(2),
	}
}

func toRateGroup(g stats.RateGroup) RateGroup {
	return RateGroup{
		Count:          g.Count,
		AveragePrice:   g.AveragePrice.StringFixed(2),
		AverageTaxRate: g.AverageTaxRate.StringFixed(2),
	}
}

func toRateStatistics(year int, s stats.RateSummary) RateStatistics {
	out := RateStatistics{
		Year:             year,
		TotalRates:       s.TotalRates,
		AverageTaxRate:   s.AverageTaxRate.StringFixed(2),
		AverageUnitPrice: s.AverageUnitPrice.StringFixed(2),
		ByFuelType:       make(map[string]RateGroup, len(s.ByFuelType)),
		ByOperationType:  make(map[string]RateGroup, len(s.ByOperationType)),
	}
	for ft, g := range s.ByFuelType {
		out.ByFuelType[string(ft)] = toRateGroup(g)
	}
	for ot, g := range s.ByOperationType {
		out.ByOperationType[string(ot)] = toRateGroup(g)
	}
	return out
}
