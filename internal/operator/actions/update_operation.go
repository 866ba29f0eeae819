package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// UpdateOperation revalues an owned operation under a row lock, so the
// stored snapshot it starts from cannot change underneath it.
type UpdateOperation struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Patch    fuel.Patch
	Resolver fuel.Resolver
	MaxYear  int

	Result *sqlconfig.Operation

	IAction
}

func (u *UpdateOperation) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := findOwned(ctx, writer, u.ID, u.UserID)
	if err != nil {
		return err
	}

	next, err := fuel.Revalue(u.Resolver, RowValuation(row), u.Patch, u.MaxYear)
	if err != nil {
		return err
	}

	update := &sqlconfig.OperationUpdate{
		Type:       omit.From(string(next.Type)),
		FuelType:   omit.From(string(next.FuelType)),
		Quantity:   omit.From(next.Quantity),
		Month:      omit.From(next.Month),
		Year:       omit.From(next.Year),
		UnitPrice:  omit.From(next.UnitPrice),
		TaxRate:    omit.From(next.TaxRate),
		SelicRate:  omit.From(next.SelicRate),
		TotalValue: omit.From(next.TotalValue),
	}
	updated, err := writer.Operations.Update(ctx, u.ID, update)
	if err != nil {
		return err
	}
	if updated == nil {
		return ErrOperationNotFound
	}

	u.Result = updated
	return nil
}
