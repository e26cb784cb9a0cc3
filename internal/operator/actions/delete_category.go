package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID

	IAction
}

// Perform soft-deletes the category and clears the reference on the user's
// transactions in the same transaction. Transactions themselves survive.
func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, d.CategoryID)
	if err != nil {
		return err
	}
	if category == nil || category.Deleted || category.UserID != d.UserID {
		return service.ErrCategoryNotFound
	}

	if err := writer.Transactions.SetCategoryNull(ctx, d.UserID, d.CategoryID); err != nil {
		return err
	}

	return writer.Categories.SetDeleted(ctx, d.CategoryID)
}
