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

type CreateAccount struct {
	UserID             uuid.UUID
	Name               string
	Type               service.AccountType
	OpeningBalance     decimal.Decimal
	OpeningBalanceDate *time.Time

	// CreatedID is set after a successful Perform.
	CreatedID uuid.UUID

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(c.Name) == 0 {
		return &service.ValidationError{Reason: "account name must not be empty"}
	}
	if c.OpeningBalance.Exponent() < -2 {
		return &service.ValidationError{Reason: "opening balance must have at most 2 fractional digits"}
	}

	id, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		UserID:             c.UserID,
		Name:               c.Name,
		Type:               sqlconfig.AccountType(c.Type),
		OpeningBalance:     c.OpeningBalance,
		OpeningBalanceDate: c.OpeningBalanceDate,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
