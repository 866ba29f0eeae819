package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/operator/actions"
	"github.com/carson-networks/fuel-server/internal/stats"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Operation represents a persisted purchase or sale in the service layer.
type Operation struct {
	ID     uuid.UUID
	UserID uuid.UUID
	fuel.Valuation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OperationFilter narrows listings, statistics and reports. Nil fields match everything.
type OperationFilter struct {
	Page     int
	Limit    int
	Month    *int
	Year     *int
	Type     *fuel.OperationType
	FuelType *fuel.FuelType
}

// WithDefaults fills in the page and limit when they are not set.
func (f OperationFilter) WithDefaults() OperationFilter {
	if f.Page == 0 {
		f.Page = defaultPage
	}
	if f.Limit == 0 {
		f.Limit = defaultLimit
	}
	return f
}

// Validate reports every invalid filter value at once.
func (f OperationFilter) Validate(maxYear int) error {
	verr := &fuel.ValidationError{}
	if f.Page < 1 {
		verr.Add("page", "page must be a positive integer", f.Page)
	}
	if f.Limit < 1 || f.Limit > maxLimit {
		verr.Add("limit", fmt.Sprintf("limit must be between 1 and %d", maxLimit), f.Limit)
	}
	if f.Month != nil && !fuel.ValidMonth(*f.Month) {
		verr.Add("month", "month must be a number between 1 and 12", *f.Month)
	}
	if f.Year != nil && (*f.Year < fuel.MinYear || *f.Year > maxYear) {
		verr.Add("year", fmt.Sprintf("year must be between %d and %d", fuel.MinYear, maxYear), *f.Year)
	}
	if f.Type != nil && !f.Type.Valid() {
		verr.Add("type", `type must be "purchase" or "sale"`, string(*f.Type))
	}
	if f.FuelType != nil && !f.FuelType.Valid() {
		verr.Add("fuelType", `fuelType must be "gasoline", "ethanol" or "diesel"`, string(*f.FuelType))
	}
	return verr.OrNil()
}

// Pagination describes where a page sits in the full result.
type Pagination struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

func newPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// OperationPage is one page of a user's operations.
type OperationPage struct {
	Operations []Operation
	Pagination Pagination
}

// Report bundles a page of operations with the aggregations over every matching operation.
type Report struct {
	Operations  []Operation
	Pagination  Pagination
	Statistics  stats.Summary
	Difference  stats.Difference
	Filter      OperationFilter
	GeneratedAt time.Time
}

func operationFromRow(row *sqlconfig.Operation) Operation {
	return Operation{
		ID:        row.ID,
		UserID:    row.UserID,
		Valuation: actions.RowValuation(row),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func statsItemsFromRows(rows []*sqlconfig.Operation) []stats.Item {
	items := make([]stats.Item, len(rows))
	for i, row := range rows {
		items[i] = stats.Item{
			Type:       fuel.OperationType(row.Type),
			FuelType:   fuel.FuelType(row.FuelType),
			Month:      row.Month,
			Quantity:   row.Quantity,
			TotalValue: row.TotalValue,
		}
	}
	return items
}
