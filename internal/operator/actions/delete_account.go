package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type DeleteAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID

	IAction
}

// Perform re-reads the guard inputs inside the transaction so a concurrent
// transaction insert cannot slip past the history gate.
func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, d.AccountID)
	if err != nil {
		return err
	}
	if account == nil || account.Deleted || account.UserID != d.UserID {
		return service.ErrAccountNotFound
	}

	firstActive, err := writer.Accounts.FirstActive(ctx, d.UserID)
	if err != nil {
		return err
	}
	firstActiveID := uuid.Nil
	if firstActive != nil {
		firstActiveID = firstActive.ID
	}

	transactionCount, err := writer.Transactions.CountByAccount(ctx, d.AccountID)
	if err != nil {
		return err
	}

	if err := service.CanDeleteAccount(account, firstActiveID, transactionCount); err != nil {
		return err
	}

	return writer.Accounts.SetDeleted(ctx, d.AccountID)
}
