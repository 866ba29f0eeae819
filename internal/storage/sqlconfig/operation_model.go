package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const operationsTable = "operations"

var operationColumns = []string{
	"id", "type", "fuel_type", "quantity", "month", "year", "unit_price",
	"tax_rate", "selic_rate", "total_value", "user_id", "created_at", "updated_at",
}

// Operation represents an operations row.
type Operation struct {
	ID         uuid.UUID       `db:"id"`
	Type       string          `db:"type"`
	FuelType   string          `db:"fuel_type"`
	Quantity   decimal.Decimal `db:"quantity"`
	Month      int             `db:"month"`
	Year       int             `db:"year"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	TaxRate    decimal.Decimal `db:"tax_rate"`
	SelicRate  decimal.Decimal `db:"selic_rate"`
	TotalValue decimal.Decimal `db:"total_value"`
	UserID     uuid.UUID       `db:"user_id"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

// OperationCreate is the input for inserting an operation.
type OperationCreate struct {
	Type       string
	FuelType   string
	Quantity   decimal.Decimal
	Month      int
	Year       int
	UnitPrice  decimal.Decimal
	TaxRate    decimal.Decimal
	SelicRate  decimal.Decimal
	TotalValue decimal.Decimal
	UserID     uuid.UUID
}

// OperationUpdate holds the columns to change. Unset fields keep their value.
type OperationUpdate struct {
	Type       omit.Val[string]
	FuelType   omit.Val[string]
	Quantity   omit.Val[decimal.Decimal]
	Month      omit.Val[int]
	Year       omit.Val[int]
	UnitPrice  omit.Val[decimal.Decimal]
	TaxRate    omit.Val[decimal.Decimal]
	SelicRate  omit.Val[decimal.Decimal]
	TotalValue omit.Val[decimal.Decimal]
}

// OperationFilter specifies filters for listing and counting operations.
// A nil UserID lists every owner. Limit 0 means no limit.
type OperationFilter struct {
	UserID   *uuid.UUID
	Month    *int
	Year     *int
	Type     *string
	FuelType *string
	Limit    int
	Offset   int
}

// IOperationTable defines the interface for operation storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IOperationTable --output mock_IOperationTable.go
type IOperationTable interface {
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Operation, error)
	Insert(ctx context.Context, create *OperationCreate) (*Operation, error)
	Update(ctx context.Context, id uuid.UUID, update *OperationUpdate) (*Operation, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter *OperationFilter) ([]*Operation, error)
	Count(ctx context.Context, filter *OperationFilter) (int64, error)
}
