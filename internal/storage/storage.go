package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Accounts     sqlconfig.IAccountTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		bobDB:        bob.NewDB(db),
		Accounts:     sqlconfig.NewAccountsTable(db),
		Transactions: sqlconfig.NewTransactionsTable(db),
		Categories:   sqlconfig.NewCategoriesTable(db),
	}
}

// Write begins a transaction and returns a Writer scoped to it. The caller
// owns the transaction and must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	w := NewWriter(tx)
	return &w, nil
}
