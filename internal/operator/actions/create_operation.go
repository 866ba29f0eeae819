package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

type CreateOperation struct {
	UserID    uuid.UUID
	Valuation fuel.Valuation

	// Result holds the stored row once Perform succeeds.
	Result *sqlconfig.Operation

	IAction
}

func (c *CreateOperation) Perform(ctx context.Context, writer *storage.Writer) error {
	storageCreate := &sqlconfig.OperationCreate{
		Type:       string(c.Valuation.Type),
		FuelType:   string(c.Valuation.FuelType),
		Quantity:   c.Valuation.Quantity,
		Month:      c.Valuation.Month,
		Year:       c.Valuation.Year,
		UnitPrice:  c.Valuation.UnitPrice,
		TaxRate:    c.Valuation.TaxRate,
		SelicRate:  c.Valuation.SelicRate,
		TotalValue: c.Valuation.TotalValue,
		UserID:     c.UserID,
	}
	row, err := writer.Operations.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	c.Result = row
	return nil
}
