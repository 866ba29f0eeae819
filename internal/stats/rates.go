package stats

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fuel-server/internal/fuel"
)

// RateGroup summarises the rates sharing a fuel or operation type.
type RateGroup struct {
	Count          int
	AveragePrice   decimal.Decimal
	AverageTaxRate decimal.Decimal
}

// RateSummary is the statistics view over a set of rates.
type RateSummary struct {
	TotalRates       int
	AverageTaxRate   decimal.Decimal
	AverageUnitPrice decimal.Decimal
	ByFuelType       map[fuel.FuelType]RateGroup
	ByOperationType  map[fuel.OperationType]RateGroup
}

type rateAccumulator struct {
	count   int
	price   decimal.Decimal
	taxRate decimal.Decimal
}

func (a *rateAccumulator) add(r fuel.Rate) {
	a.count++
	a.price = a.price.Add(r.UnitPrice)
	a.taxRate = a.taxRate.Add(r.TaxRate)
}

func (a *rateAccumulator) group() RateGroup {
	return RateGroup{
		Count:          a.count,
		AveragePrice:   average(a.price, a.count),
		AverageTaxRate: average(a.taxRate, a.count),
	}
}

// SummarizeRates computes per-fuel and per-operation averages of rates.
// Groups only exist for types present in rates.
func SummarizeRates(rates []fuel.Rate) RateSummary {
	var total rateAccumulator
	byFuel := make(map[fuel.FuelType]*rateAccumulator)
	byOperation := make(map[fuel.OperationType]*rateAccumulator)

	for _, r := range rates {
		total.add(r)

		if byFuel[r.FuelType] == nil {
			byFuel[r.FuelType] = &rateAccumulator{}
		}
		byFuel[r.FuelType].add(r)

		if byOperation[r.OperationType] == nil {
			byOperation[r.OperationType] = &rateAccumulator{}
		}
		byOperation[r.OperationType].add(r)
	}

	summary := RateSummary{
		TotalRates:       total.count,
		AverageTaxRate:   average(total.taxRate, total.count),
		AverageUnitPrice: average(total.price, total.count),
		ByFuelType:       make(map[fuel.FuelType]RateGroup, len(byFuel)),
		ByOperationType:  make(map[fuel.OperationType]RateGroup, len(byOperation)),
	}
	for ft, acc := range byFuel {
		summary.ByFuelType[ft] = acc.group()
	}
	for ot, acc := range byOperation {
		summary.ByOperationType[ot] = acc.group()
	}
	return summary
}
