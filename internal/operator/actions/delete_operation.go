package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

type DeleteOperation struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Deleted holds the row as it was before deletion.
	Deleted *sqlconfig.Operation

	IAction
}

func (d *DeleteOperation) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := findOwned(ctx, writer, d.ID, d.UserID)
	if err != nil {
		return err
	}

	deleted, err := writer.Operations.Delete(ctx, d.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOperationNotFound
	}

	d.Deleted = row
	return nil
}
