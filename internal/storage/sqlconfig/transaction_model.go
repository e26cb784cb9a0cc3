package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Amount is always a positive
// magnitude; direction is carried by Type.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	AccountID       uuid.UUID       `db:"account_id"`
	CategoryID      uuid.NullUUID   `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	Type            TransactionType `db:"type"`
	PaymentMethod   PaymentMethod   `db:"payment_method"`
	Notes           string          `db:"notes"`
	Deleted         bool            `db:"deleted"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	Type            TransactionType
	PaymentMethod   PaymentMethod
	Notes           string
}

// TransactionUpdate carries the fields of a partial transaction update.
// Unset fields are left untouched.
type TransactionUpdate struct {
	AccountID       omit.Val[uuid.UUID]
	CategoryID      omit.Val[uuid.NullUUID]
	Amount          omit.Val[decimal.Decimal]
	Description     omit.Val[string]
	TransactionDate omit.Val[time.Time]
	Type            omit.Val[TransactionType]
	PaymentMethod   omit.Val[PaymentMethod]
	Notes           omit.Val[string]
}

// TransactionFilter specifies filters for listing transactions.
// The embedded query spec supplies owner, account, type, and date filters.
type TransactionFilter struct {
	TransactionQuery
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// TypeTotal is one row of a per-type aggregate: the decimal sum and row
// count of non-deleted transactions of one type.
type TypeTotal struct {
	Type  TransactionType `db:"type"`
	Total decimal.Decimal `db:"total"`
	Count int64           `db:"count"`
}

// CategoryTotal is one row of a per-category aggregate, split by type.
// CategoryID is invalid for uncategorized transactions.
type CategoryTotal struct {
	CategoryID uuid.NullUUID   `db:"category_id"`
	Type       TransactionType `db:"type"`
	Total      decimal.Decimal `db:"total"`
	Count      int64           `db:"count"`
}

// PaymentMethodTotal is one row of a per-payment-method aggregate, split by type.
type PaymentMethodTotal struct {
	PaymentMethod PaymentMethod   `db:"payment_method"`
	Type          TransactionType `db:"type"`
	Total         decimal.Decimal `db:"total"`
	Count         int64           `db:"count"`
}

// MonthTotal is one row of a per-calendar-month aggregate.
type MonthTotal struct {
	Month int             `db:"month"`
	Total decimal.Decimal `db:"total"`
	Count int64           `db:"count"`
}

// ITransactionTable defines the interface for transaction storage operations,
// including the ledger aggregates. This abstraction allows swapping the
// implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	// FindByID retrieves a transaction by primary key, soft-deleted rows
	// included. Returns nil without error when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	// List returns non-deleted transactions matching the filter, newest first.
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	SetDeleted(ctx context.Context, id uuid.UUID) error
	// SetCategoryNull clears the category reference on every transaction of
	// the user that points at the given category.
	SetCategoryNull(ctx context.Context, userID, categoryID uuid.UUID) error
	// CountByAccount counts non-deleted transactions referencing the account.
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	TotalsByType(ctx context.Context, query TransactionQuery) ([]TypeTotal, error)
	TotalsByCategory(ctx context.Context, query TransactionQuery) ([]CategoryTotal, error)
	TotalsByPaymentMethod(ctx context.Context, query TransactionQuery) ([]PaymentMethodTotal, error)
	TotalsByMonth(ctx context.Context, query TransactionQuery) ([]MonthTotal, error)
}
