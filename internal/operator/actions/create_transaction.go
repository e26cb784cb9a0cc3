package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      *uuid.UUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	Type            service.TransactionType
	PaymentMethod   service.PaymentMethod
	Notes           string

	// CreatedID is set after a successful Perform.
	CreatedID uuid.UUID

	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	candidate := service.Transaction{
		Amount:          t.Amount,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	account, err := writer.Accounts.FindByID(ctx, t.AccountID)
	if err != nil {
		return err
	}
	if account == nil || account.Deleted || account.UserID != t.UserID {
		return service.ErrAccountNotFound
	}

	categoryID := uuid.NullUUID{}
	if t.CategoryID != nil {
		category, err := writer.Categories.FindByID(ctx, *t.CategoryID)
		if err != nil {
			return err
		}
		if category == nil || category.Deleted || category.UserID != t.UserID {
			return service.ErrCategoryNotFound
		}
		categoryID = uuid.NullUUID{UUID: *t.CategoryID, Valid: true}
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:          t.UserID,
		AccountID:       t.AccountID,
		CategoryID:      categoryID,
		Amount:          t.Amount,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		Type:            sqlconfig.TransactionType(t.Type),
		PaymentMethod:   sqlconfig.PaymentMethod(t.PaymentMethod),
		Notes:           t.Notes,
	})
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
