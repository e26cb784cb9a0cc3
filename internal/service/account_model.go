package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeBank
	AccountTypeCard
	AccountTypeOther
)

// ParseAccountType converts the wire representation of an account type.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "cash":
		return AccountTypeCash, nil
	case "bank":
		return AccountTypeBank, nil
	case "card":
		return AccountTypeCard, nil
	case "other":
		return AccountTypeOther, nil
	}
	return 0, fmt.Errorf("unknown account type %q", s)
}

func (t AccountType) String() string {
	switch t {
	case AccountTypeCash:
		return "cash"
	case AccountTypeBank:
		return "bank"
	case AccountTypeCard:
		return "card"
	}
	return "other"
}

func accountTypeToStorage(t AccountType) sqlconfig.AccountType {
	return sqlconfig.AccountType(t)
}

func accountTypeFromStorage(t sqlconfig.AccountType) AccountType {
	return AccountType(t)
}

// Account represents an account in the service layer.
type Account struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	Type               AccountType
	OpeningBalance     decimal.Decimal
	OpeningBalanceDate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:                 row.ID,
		UserID:             row.UserID,
		Name:               row.Name,
		Type:               accountTypeFromStorage(row.Type),
		OpeningBalance:     row.OpeningBalance,
		OpeningBalanceDate: row.OpeningBalanceDate,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
