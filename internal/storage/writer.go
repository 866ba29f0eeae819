package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

// Tx ends the transaction a Writer runs in.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables that can be modified within a single transaction.
type Writer struct {
	tx         Tx
	Operations sqlconfig.IOperationTable
	Users      sqlconfig.IUserTable
}

func NewWriter(tx bob.Tx) *Writer {
	return NewWriterWithTables(tx, sqlconfig.NewOperationsTable(tx), sqlconfig.NewUsersTable(tx))
}

// NewWriterWithTables builds a Writer over tables that already run inside tx.
func NewWriterWithTables(tx Tx, operations sqlconfig.IOperationTable, users sqlconfig.IUserTable) *Writer {
	return &Writer{
		tx:         tx,
		Operations: operations,
		Users:      users,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
