// Package stats folds priced operations and rates into summary views.
//
// Every function here is pure. Sums are accumulated at full precision and
// each output field is rounded to cents once, when the result is built.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fuel-server/internal/fuel"
)

// Item is the part of an operation the aggregations read.
type Item struct {
	Type       fuel.OperationType
	FuelType   fuel.FuelType
	Month      int
	Quantity   decimal.Decimal
	TotalValue decimal.Decimal
}

// MonthSummary aggregates the operations of one month.
type MonthSummary struct {
	Value      decimal.Decimal
	Quantity   decimal.Decimal
	Operations int
}

// Summary is the statistics view over a set of operations.
type Summary struct {
	TotalOperations int
	TotalValue      decimal.Decimal
	TotalQuantity   decimal.Decimal
	ByType          map[fuel.OperationType]decimal.Decimal
	ByFuelType      map[fuel.FuelType]decimal.Decimal
	ByMonth         map[int]MonthSummary
	AverageValue    decimal.Decimal
	AverageQuantity decimal.Decimal
}

// Difference compares what was sold against what was bought.
type Difference struct {
	TotalPurchases  decimal.Decimal
	TotalSales      decimal.Decimal
	Difference      decimal.Decimal
	IsPositive      bool
	OperationsCount int
}

// Summarize computes the statistics view of items. ByType and ByFuelType always
// carry every known key; ByMonth only the months present in items.
func Summarize(items []Item) Summary {
	var totalValue, totalQuantity decimal.Decimal
	byType := make(map[fuel.OperationType]decimal.Decimal, len(fuel.OperationTypes))
	for _, ot := range fuel.OperationTypes {
		byType[ot] = decimal.Zero
	}
	byFuelType := make(map[fuel.FuelType]decimal.Decimal, len(fuel.FuelTypes))
	for _, ft := range fuel.FuelTypes {
		byFuelType[ft] = decimal.Zero
	}
	byMonth := make(map[int]MonthSummary)

	for _, item := range items {
		totalValue = totalValue.Add(item.TotalValue)
		totalQuantity = totalQuantity.Add(item.Quantity)

		if sum, ok := byType[item.Type]; ok {
			byType[item.Type] = sum.Add(item.TotalValue)
		}
		if sum, ok := byFuelType[item.FuelType]; ok {
			byFuelType[item.FuelType] = sum.Add(item.TotalValue)
		}

		month := byMonth[item.Month]
		month.Value = month.Value.Add(item.TotalValue)
		month.Quantity = month.Quantity.Add(item.Quantity)
		month.Operations++
		byMonth[item.Month] = month
	}

	for ot, sum := range byType {
		byType[ot] = fuel.Round2(sum)
	}
	for ft, sum := range byFuelType {
		byFuelType[ft] = fuel.Round2(sum)
	}
	for m, month := range byMonth {
		month.Value = fuel.Round2(month.Value)
		month.Quantity = fuel.Round2(month.Quantity)
		byMonth[m] = month
	}

	return Summary{
		TotalOperations: len(items),
		TotalValue:      fuel.Round2(totalValue),
		TotalQuantity:   fuel.Round2(totalQuantity),
		ByType:          byType,
		ByFuelType:      byFuelType,
		ByMonth:         byMonth,
		AverageValue:    average(totalValue, len(items)),
		AverageQuantity: average(totalQuantity, len(items)),
	}
}

// Diff computes sales minus purchases over items. Zero counts as positive.
func Diff(items []Item) Difference {
	var purchases, sales decimal.Decimal
	for _, item := range items {
		switch item.Type {
		case fuel.OperationTypePurchase:
			purchases = purchases.Add(item.TotalValue)
		case fuel.OperationTypeSale:
			sales = sales.Add(item.TotalValue)
		}
	}

	difference := sales.Sub(purchases)

	return Difference{
		TotalPurchases:  fuel.Round2(purchases),
		TotalSales:      fuel.Round2(sales),
		Difference:      fuel.Round2(difference),
		IsPositive:      !difference.IsNegative(),
		OperationsCount: len(items),
	}
}

func average(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return fuel.Round2(sum.Div(decimal.NewFromInt(int64(count))))
}
