package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const ratesTable = "rates"

var rateColumns = []string{
	"id", "month", "year", "fuel_type", "operation_type", "unit_price", "tax_rate", "created_at", "updated_at",
}

// Rate represents a rates row.
type Rate struct {
	ID            int64           `db:"id"`
	Month         int             `db:"month"`
	Year          int             `db:"year"`
	FuelType      string          `db:"fuel_type"`
	OperationType string          `db:"operation_type"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TaxRate       decimal.Decimal `db:"tax_rate"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// IRateTable defines the interface for rate storage operations.
//
//go:generate mockery --name IRateTable --output mock_IRateTable.go
type IRateTable interface {
	List(ctx context.Context) ([]*Rate, error)
}
