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

type UpdateAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID

	Name               omit.Val[string]
	Type               omit.Val[service.AccountType]
	OpeningBalance     omit.Val[decimal.Decimal]
	OpeningBalanceDate omit.Val[*time.Time]

	IAction
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, u.AccountID)
	if err != nil {
		return err
	}
	if account == nil || account.Deleted || account.UserID != u.UserID {
		return service.ErrAccountNotFound
	}

	if u.Name.IsValue() && len(u.Name.GetOrZero()) == 0 {
		return &service.ValidationError{Reason: "account name must not be empty"}
	}
	if u.OpeningBalance.IsValue() && u.OpeningBalance.GetOrZero().Exponent() < -2 {
		return &service.ValidationError{Reason: "opening balance must have at most 2 fractional digits"}
	}

	update := &sqlconfig.AccountUpdate{
		Name:               u.Name,
		OpeningBalance:     u.OpeningBalance,
		OpeningBalanceDate: u.OpeningBalanceDate,
	}
	if u.Type.IsValue() {
		update.Type = omit.From(sqlconfig.AccountType(u.Type.GetOrZero()))
	}

	return writer.Accounts.Update(ctx, u.AccountID, update)
}
