package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID                 uuid.UUID       `db:"id"`
	UserID             uuid.UUID       `db:"user_id"`
	Name               string          `db:"name"`
	Type               AccountType     `db:"type"`
	OpeningBalance     decimal.Decimal `db:"opening_balance"`
	OpeningBalanceDate *time.Time      `db:"opening_balance_date"`
	Deleted            bool            `db:"deleted"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID             uuid.UUID
	Name               string
	Type               AccountType
	OpeningBalance     decimal.Decimal
	OpeningBalanceDate *time.Time
}

// AccountUpdate carries the fields of a partial account update.
// Unset fields are left untouched.
type AccountUpdate struct {
	Name               omit.Val[string]
	Type               omit.Val[AccountType]
	OpeningBalance     omit.Val[decimal.Decimal]
	OpeningBalanceDate omit.Val[*time.Time]
}

// AccountFilter specifies filters for listing accounts.
// Soft-deleted accounts are always excluded.
type AccountFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	// FindByID retrieves an account by primary key, soft-deleted rows included.
	// Returns nil without error when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	// FirstActive returns the user's chronologically first non-deleted account,
	// or nil when the user has none.
	FirstActive(ctx context.Context, userID uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	// List returns non-deleted accounts ordered by creation time ascending.
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
	Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error
	SetDeleted(ctx context.Context, id uuid.UUID) error
}
