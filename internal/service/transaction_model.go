package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// TransactionType carries the direction of a transaction. Credit increases
// an account's balance, debit decreases it; amounts themselves are always
// positive magnitudes.
type TransactionType int8

const (
	TransactionTypeCredit TransactionType = iota
	TransactionTypeDebit
)

// ParseTransactionType converts the wire representation of a transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "credit":
		return TransactionTypeCredit, nil
	case "debit":
		return TransactionTypeDebit, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

func (t TransactionType) String() string {
	if t == TransactionTypeCredit {
		return "credit"
	}
	return "debit"
}

// PaymentMethod represents how a transaction was paid.
type PaymentMethod int8

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodCard
	PaymentMethodUPI
	PaymentMethodOther
)

// ParsePaymentMethod converts the wire representation of a payment method.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return PaymentMethodCash, nil
	case "card":
		return PaymentMethodCard, nil
	case "upi":
		return PaymentMethodUPI, nil
	case "other":
		return PaymentMethodOther, nil
	}
	return 0, fmt.Errorf("unknown payment method %q", s)
}

func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCash:
		return "cash"
	case PaymentMethodCard:
		return "card"
	case PaymentMethodUPI:
		return "upi"
	}
	return "other"
}

func transactionTypeToStorage(t TransactionType) sqlconfig.TransactionType {
	return sqlconfig.TransactionType(t)
}

func transactionTypeFromStorage(t sqlconfig.TransactionType) TransactionType {
	return TransactionType(t)
}

func paymentMethodToStorage(m PaymentMethod) sqlconfig.PaymentMethod {
	return sqlconfig.PaymentMethod(m)
}

func paymentMethodFromStorage(m sqlconfig.PaymentMethod) PaymentMethod {
	return PaymentMethod(m)
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      *uuid.UUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	Type            TransactionType
	PaymentMethod   PaymentMethod
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the invariants every stored transaction must satisfy.
// Amounts are positive magnitudes with at most 2 fractional digits.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return &ValidationError{Reason: "amount must be greater than zero"}
	}
	if t.Amount.Exponent() < -2 {
		return &ValidationError{Reason: "amount must have at most 2 fractional digits"}
	}
	if len(t.Description) == 0 {
		return &ValidationError{Reason: "description must not be empty"}
	}
	if len(t.Description) > 255 {
		return &ValidationError{Reason: "description must be at most 255 characters"}
	}
	if t.TransactionDate.IsZero() {
		return &ValidationError{Reason: "transaction date is required"}
	}
	return nil
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListFilter narrows a transaction listing. Nil fields are
// not applied.
type TransactionListFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *TransactionType
	DateFrom   *time.Time
	DateTo     *time.Time
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	var categoryID *uuid.UUID
	if row.CategoryID.Valid {
		id := row.CategoryID.UUID
		categoryID = &id
	}

	return Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		AccountID:       row.AccountID,
		CategoryID:      categoryID,
		Amount:          row.Amount,
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
		Type:            transactionTypeFromStorage(row.Type),
		PaymentMethod:   paymentMethodFromStorage(row.PaymentMethod),
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
