package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newCreateTransactionWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockIAccountTable, *sqlconfig.MockITransactionTable, *sqlconfig.MockICategoryTable) {
	t.Helper()
	mockAccounts := sqlconfig.NewMockIAccountTable(t)
	mockTransactions := sqlconfig.NewMockITransactionTable(t)
	mockCategories := sqlconfig.NewMockICategoryTable(t)
	writer := &storage.Writer{
		Accounts:     mockAccounts,
		Transactions: mockTransactions,
		Categories:   mockCategories,
	}
	return writer, mockAccounts, mockTransactions, mockCategories
}

func validCreateTransaction(userID, accountID uuid.UUID) *CreateTransaction {
	return &CreateTransaction{
		UserID:          userID,
		AccountID:       accountID,
		Amount:          decimal.RequireFromString("12.50"),
		Description:     "Coffee",
		TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:            service.TransactionTypeDebit,
		PaymentMethod:   service.PaymentMethodCard,
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	writer, mockAccounts, mockTransactions, _ := newCreateTransactionWriter(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	expectedID := uuid.Must(uuid.NewV4())

	mockAccounts.EXPECT().FindByID(mock.Anything, accountID).
		Return(&sqlconfig.Account{ID: accountID, UserID: userID}, nil)
	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == userID &&
			c.AccountID == accountID &&
			!c.CategoryID.Valid &&
			c.Amount.Equal(decimal.RequireFromString("12.50")) &&
			c.Type == sqlconfig.TransactionTypeDebit &&
			c.PaymentMethod == sqlconfig.PaymentMethodCard
	})).Return(expectedID, nil)

	action := validCreateTransaction(userID, accountID)
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, expectedID, action.CreatedID)
}

func TestCreateTransaction_WithCategory(t *testing.T) {
	writer, mockAccounts, mockTransactions, mockCategories := newCreateTransactionWriter(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockAccounts.EXPECT().FindByID(mock.Anything, accountID).
		Return(&sqlconfig.Account{ID: accountID, UserID: userID}, nil)
	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID}, nil)
	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.CategoryID.Valid && c.CategoryID.UUID == categoryID
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := validCreateTransaction(userID, accountID)
	action.CategoryID = &categoryID
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	writer, mockAccounts, _, _ := newCreateTransactionWriter(t)

	action := validCreateTransaction(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))
	action.Amount = decimal.RequireFromString("-1.00")
	err := action.Perform(context.Background(), writer)

	var validation *service.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockAccounts.AssertNotCalled(t, "FindByID")
}

func TestCreateTransaction_AccountNotFound(t *testing.T) {
	writer, mockAccounts, mockTransactions, _ := newCreateTransactionWriter(t)

	mockAccounts.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil)

	action := validCreateTransaction(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrAccountNotFound)
	mockTransactions.AssertNotCalled(t, "Insert")
}

func TestCreateTransaction_ForeignAccount(t *testing.T) {
	writer, mockAccounts, mockTransactions, _ := newCreateTransactionWriter(t)

	accountID := uuid.Must(uuid.NewV4())
	mockAccounts.EXPECT().FindByID(mock.Anything, accountID).
		Return(&sqlconfig.Account{ID: accountID, UserID: uuid.Must(uuid.NewV4())}, nil)

	action := validCreateTransaction(uuid.Must(uuid.NewV4()), accountID)
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrAccountNotFound)
	mockTransactions.AssertNotCalled(t, "Insert")
}

func TestCreateTransaction_CategoryNotFound(t *testing.T) {
	writer, mockAccounts, mockTransactions, mockCategories := newCreateTransactionWriter(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockAccounts.EXPECT().FindByID(mock.Anything, accountID).
		Return(&sqlconfig.Account{ID: accountID, UserID: userID}, nil)
	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).Return(nil, nil)

	action := validCreateTransaction(userID, accountID)
	action.CategoryID = &categoryID
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
	mockTransactions.AssertNotCalled(t, "Insert")
}

func TestCreateTransaction_DeletedCategory(t *testing.T) {
	writer, mockAccounts, mockTransactions, mockCategories := newCreateTransactionWriter(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockAccounts.EXPECT().FindByID(mock.Anything, accountID).
		Return(&sqlconfig.Account{ID: accountID, UserID: userID}, nil)
	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID, Deleted: true}, nil)

	action := validCreateTransaction(userID, accountID)
	action.CategoryID = &categoryID
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
	mockTransactions.AssertNotCalled(t, "Insert")
}
