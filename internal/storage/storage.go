package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/fuel-server/internal/config"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB         *sql.DB
	bobDB      bob.DB
	Operations sqlconfig.IOperationTable
	Rates      sqlconfig.IRateTable
	Users      sqlconfig.IUserTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:         db,
		bobDB:      bobDB,
		Operations: sqlconfig.NewOperationsTable(bobDB),
		Rates:      sqlconfig.NewRatesTable(bobDB),
		Users:      sqlconfig.NewUsersTable(bobDB),
	}, nil
}

// Write opens a transaction and returns a Writer whose tables run inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
