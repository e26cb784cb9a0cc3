package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type UpdateTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID

	AccountID omit.Val[uuid.UUID]
	// CategoryID set to nil clears the category.
	CategoryID      omit.Val[*uuid.UUID]
	Amount          omit.Val[decimal.Decimal]
	Description     omit.Val[string]
	TransactionDate omit.Val[time.Time]
	Type            omit.Val[service.TransactionType]
	PaymentMethod   omit.Val[service.PaymentMethod]
	Notes           omit.Val[string]

	IAction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.FindByID(ctx, u.TransactionID)
	if err != nil {
		return err
	}
	if row == nil || row.Deleted || row.UserID != u.UserID {
		return service.ErrTransactionNotFound
	}

	// Validate the transaction as it would be after the update.
	candidate := service.Transaction{
		Amount:          row.Amount,
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
	}
	if u.Amount.IsValue() {
		candidate.Amount = u.Amount.GetOrZero()
	}
	if u.Description.IsValue() {
		candidate.Description = u.Description.GetOrZero()
	}
	if u.TransactionDate.IsValue() {
		candidate.TransactionDate = u.TransactionDate.GetOrZero()
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if u.AccountID.IsValue() {
		account, err := writer.Accounts.FindByID(ctx, u.AccountID.GetOrZero())
		if err != nil {
			return err
		}
		if account == nil || account.Deleted || account.UserID != u.UserID {
			return service.ErrAccountNotFound
		}
	}

	update := &sqlconfig.TransactionUpdate{
		AccountID:       u.AccountID,
		Amount:          u.Amount,
		Description:     u.Description,
		TransactionDate: u.TransactionDate,
		Notes:           u.Notes,
	}
	if u.Type.IsValue() {
		update.Type = omit.From(sqlconfig.TransactionType(u.Type.GetOrZero()))
	}
	if u.PaymentMethod.IsValue() {
		update.PaymentMethod = omit.From(sqlconfig.PaymentMethod(u.PaymentMethod.GetOrZero()))
	}
	if u.CategoryID.IsValue() {
		categoryID := uuid.NullUUID{}
		if target := u.CategoryID.GetOrZero(); target != nil {
			category, err := writer.Categories.FindByID(ctx, *target)
			if err != nil {
				return err
			}
			if category == nil || category.Deleted || category.UserID != u.UserID {
				return service.ErrCategoryNotFound
			}
			categoryID = uuid.NullUUID{UUID: *target, Valid: true}
		}
		update.CategoryID = omit.From(categoryID)
	}

	return writer.Transactions.Update(ctx, u.TransactionID, update)
}
