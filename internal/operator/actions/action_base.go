package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// ErrOperationNotFound is returned when the operation does not exist or has another owner.
var ErrOperationNotFound = errors.New("operation not found")

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// findOwned locks the operation row and checks it belongs to userID.
func findOwned(ctx context.Context, writer *storage.Writer, id, userID uuid.UUID) (*sqlconfig.Operation, error) {
	row, err := writer.Operations.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if row == nil || row.UserID != userID {
		return nil, ErrOperationNotFound
	}
	return row, nil
}

// RowValuation converts a stored operation into its valuation snapshot.
func RowValuation(row *sqlconfig.Operation) fuel.Valuation {
	return fuel.Valuation{
		Type:       fuel.OperationType(row.Type),
		FuelType:   fuel.FuelType(row.FuelType),
		Month:      row.Month,
		Year:       row.Year,
		Quantity:   row.Quantity,
		UnitPrice:  row.UnitPrice,
		TaxRate:    row.TaxRate,
		SelicRate:  row.SelicRate,
		TotalValue: row.TotalValue,
	}
}
