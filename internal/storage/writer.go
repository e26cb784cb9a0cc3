package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Writer bundles the table gateways bound to a single transaction. The table
// fields are interfaces so tests can swap in mocks via a struct literal.
type Writer struct {
	tx           bob.Tx
	Accounts     sqlconfig.IAccountTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:           tx,
		Accounts:     sqlconfig.NewAccountsTableExec(tx),
		Transactions: sqlconfig.NewTransactionsTableExec(tx),
		Categories:   sqlconfig.NewCategoriesTableExec(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
