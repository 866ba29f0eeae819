package operation

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/service"
	"github.com/carson-networks/fuel-server/internal/stats"
)

// Valuation is the API model of a priced operation that may not be stored yet.
type Valuation struct {
	Type       string `json:"type" doc:"purchase or sale"`
	FuelType   string `json:"fuelType" doc:"gasoline, ethanol or diesel"`
	Quantity   string `json:"quantity" doc:"Liters, up to 3 decimal places"`
	Month      int    `json:"month" doc:"Month of the operation, 1-12"`
	Year       int    `json:"year" doc:"Year of the operation"`
	UnitPrice  string `json:"unitPrice" doc:"Unit price per liter"`
	TaxRate    string `json:"taxRate" doc:"Tax rate in percent"`
	SelicRate  string `json:"selicRate" doc:"SELIC rate in percent"`
	TotalValue string `json:"totalValue" doc:"Total value rounded to cents"`
}

// Operation is the API response model for a stored operation.
type Operation struct {
	ID     string `json:"id" doc:"Operation UUID"`
	UserID string `json:"userID" doc:"Owner UUID"`
	Valuation
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

// OperationBody is the response body wrapping one operation.
type OperationBody struct {
	Operation Operation `json:"operation"`
}

// Pagination is the API model of page metadata.
type Pagination struct {
	Total      int64 `json:"total" doc:"Operations matching the filters"`
	Page       int   `json:"page" doc:"Current page, starting at 1"`
	Limit      int   `json:"limit" doc:"Page size"`
	TotalPages int   `json:"totalPages" doc:"ceil(total / limit)"`
}

// MonthSummary is the API model of one month of statistics.
type MonthSummary struct {
	Value      string `json:"value"`
	Quantity   string `json:"quantity"`
	Operations int    `json:"operations"`
}

// Statistics is the API model of an operations summary.
type Statistics struct {
	TotalOperations int                     `json:"totalOperations"`
	TotalValue      string                  `json:"totalValue"`
	TotalQuantity   string                  `json:"totalQuantity"`
	ByType          map[string]string       `json:"byType" doc:"Total value per operation type"`
	ByFuelType      map[string]string       `json:"byFuelType" doc:"Total value per fuel type"`
	ByMonth         map[string]MonthSummary `json:"byMonth" doc:"Keyed by month number, only months with operations"`
	AverageValue    string                  `json:"averageValue"`
	AverageQuantity string                  `json:"averageQuantity"`
}

// Difference is the API model of sales minus purchases.
type Difference struct {
	TotalPurchases  string `json:"totalPurchases"`
	TotalSales      string `json:"totalSales"`
	Difference      string `json:"difference"`
	IsPositive      bool   `json:"isPositive"`
	OperationsCount int    `json:"operationsCount"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toValuation(v fuel.Valuation) Valuation {
	return Valuation{
		Type:       string(v.Type),
		FuelType:   string(v.FuelType),
		Quantity:   v.Quantity.String(),
		Month:      v.Month,
		Year:       v.Year,
		UnitPrice:  money(v.UnitPrice),
		TaxRate:    money(v.TaxRate),
		SelicRate:  money(v.SelicRate),
		TotalValue: money(v.TotalValue),
	}
}

func toOperation(op service.Operation) Operation {
	return Operation{
		ID:        op.ID.String(),
		UserID:    op.UserID.String(),
		Valuation: toValuation(op.Valuation),
		CreatedAt: op.CreatedAt.Format(time.RFC3339),
		UpdatedAt: op.UpdatedAt.Format(time.RFC3339),
	}
}

func toOperations(ops []service.Operation) []Operation {
	result := make([]Operation, len(ops))
	for i, op := range ops {
		result[i] = toOperation(op)
	}
	return result
}

func toPagination(p service.Pagination) Pagination {
	return Pagination{Total: p.Total, Page: p.Page, Limit: p.Limit, TotalPages: p.TotalPages}
}

func toStatistics(s stats.Summary) Statistics {
	out := Statistics{
		TotalOperations: s.TotalOperations,
		TotalValue:      money(s.TotalValue),
		TotalQuantity:   money(s.TotalQuantity),
		ByType:          make(map[string]string, len(s.ByType)),
		ByFuelType:      make(map[string]string, len(s.ByFuelType)),
		ByMonth:         make(map[string]MonthSummary, len(s.ByMonth)),
		AverageValue:    money(s.AverageValue),
		AverageQuantity: money(s.AverageQuantity),
	}
	for ot, v := range s.ByType {
		out.ByType[string(ot)] = money(v)
	}
	for ft, v := range s.ByFuelType {
		out.ByFuelType[string(ft)] = money(v)
	}
	for m, v := range s.ByMonth {
		out.ByMonth[strconv.Itoa(m)] = MonthSummary{
			Value:      money(v.Value),
			Quantity:   money(v.Quantity),
			Operations: v.Operations,
		}
	}
	return out
}

func toDifference(d stats.Difference) Difference {
	return Difference{
		TotalPurchases:  money(d.TotalPurchases),
		TotalSales:      money(d.TotalSales),
		Difference:      money(d.Difference),
		IsPositive:      d.IsPositive,
		OperationsCount: d.OperationsCount,
	}
}
