package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID

	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.FindByID(ctx, d.TransactionID)
	if err != nil {
		return err
	}
	if row == nil || row.Deleted || row.UserID != d.UserID {
		return service.ErrTransactionNotFound
	}

	return writer.Transactions.SetDeleted(ctx, d.TransactionID)
}
