package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newBalanceTestService(t *testing.T) (*BalanceService, *sqlconfig.MockIAccountTable, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockAccounts := sqlconfig.NewMockIAccountTable(t)
	mockTransactions := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Accounts: mockAccounts, Transactions: mockTransactions}
	svc := NewBalanceService(store, newTestLogger())
	return svc, mockAccounts, mockTransactions
}

func makeAccountRow(userID uuid.UUID, openingBalance string) *sqlconfig.Account {
	openingDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &sqlconfig.Account{
		ID:                 uuid.Must(uuid.NewV4()),
		UserID:             userID,
		Name:               "Savings",
		Type:               sqlconfig.AccountTypeBank,
		OpeningBalance:     decimal.RequireFromString(openingBalance),
		OpeningBalanceDate: &openingDate,
		CreatedAt:          openingDate,
	}
}

// -- GetBalance tests --

func TestGetBalance_Success(t *testing.T) {
	svc, mockAccounts, mockTransactions := newBalanceTestService(t)

	userID := uuid.Must(uuid.NewV4())
	account := makeAccountRow(userID, "1000.00")

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	mockTransactions.EXPECT().TotalsByType(mock.Anything, mock.MatchedBy(func(q sqlconfig.TransactionQuery) bool {
		return q.UserID == userID &&
			q.AccountID != nil && *q.AccountID == account.ID &&
			q.DateFrom != nil && q.DateFrom.Equal(*account.OpeningBalanceDate)
	})).Return([]sqlconfig.TypeTotal{
		{Type: sqlconfig.TransactionTypeCredit, Total: decimal.RequireFromString("500.00"), Count: 2},
		{Type: sqlconfig.TransactionTypeDebit, Total: decimal.RequireFromString("200.00"), Count: 1},
	}, nil)

	balance, err := svc.GetBalance(context.Background(), userID, account.ID)

	assert.NoError(t, err)
	assert.Equal(t, account.ID, balance.AccountID)
	assert.Equal(t, "Savings", balance.AccountName)
	assert.True(t, balance.TotalCredit.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, balance.TotalDebit.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, balance.Balance.Equal(decimal.RequireFromString("1300.00")))
}

func TestGetBalance_NoTransactions(t *testing.T) {
	svc, mockAccounts, mockTransactions := newBalanceTestService(t)

	userID := uuid.Must(uuid.NewV4())
	account := makeAccountRow(userID, "250.50")

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	mockTransactions.EXPECT().TotalsByType(mock.Anything, mock.Anything).
		Return([]sqlconfig.TypeTotal{}, nil)

	balance, err := svc.GetBalance(context.Background(), userID, account.ID)

	assert.NoError(t, err)
	assert.True(t, balance.TotalCredit.IsZero())
	assert.True(t, balance.TotalDebit.IsZero())
	assert.True(t, balance.Balance.Equal(account.OpeningBalance))
}

func TestGetBalance_AccountNotFound(t *testing.T) {
	svc, mockAccounts, _ := newBalanceTestService(t)

	mockAccounts.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil)

	balance, err := svc.GetBalance(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, balance)
}

func TestGetBalance_DeletedAccount(t *testing.T) {
	svc, mockAccounts, _ := newBalanceTestService(t)

	userID := uuid.Must(uuid.NewV4())
	account := makeAccountRow(userID, "100.00")
	account.Deleted = true

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	_, err := svc.GetBalance(context.Background(), userID, account.ID)

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetBalance_ForeignAccount(t *testing.T) {
	svc, mockAccounts, _ := newBalanceTestService(t)

	account := makeAccountRow(uuid.Must(uuid.NewV4()), "100.00")

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	_, err := svc.GetBalance(context.Background(), uuid.Must(uuid.NewV4()), account.ID)

	assert.ErrorIs(t, err, ErrAccountNotFound, "foreign ownership is indistinguishable from absence")
}

func TestGetBalance_AggregateError(t *testing.T) {
	svc, mockAccounts, mockTransactions := newBalanceTestService(t)

	userID := uuid.Must(uuid.NewV4())
	account := makeAccountRow(userID, "100.00")

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	mockTransactions.EXPECT().TotalsByType(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	balance, err := svc.GetBalance(context.Background(), userID, account.ID)

	assert.Error(t, err)
	assert.Nil(t, balance)
}

// -- ListBalances tests --

func TestListBalances_NoAccounts(t *testing.T) {
	svc, mockAccounts, _ := newBalanceTestService(t)

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Account{}, nil)

	balances, err := svc.ListBalances(context.Background(), uuid.Must(uuid.NewV4()))

	assert.NoError(t, err)
	assert.Empty(t, balances)
}

func TestListBalances_Success(t *testing.T) {
	svc, mockAccounts, mockTransactions := newBalanceTestService(t)

	userID := uuid.Must(uuid.NewV4())
	first := makeAccountRow(userID, "100.00")
	second := makeAccountRow(userID, "50.00")

	mockAccounts.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AccountFilter) bool {
		return f.UserID == userID && f.Limit == 0
	})).Return([]*sqlconfig.Account{first, second}, nil)

	mockTransactions.EXPECT().TotalsByType(mock.Anything, mock.MatchedBy(func(q sqlconfig.TransactionQuery) bool {
		return q.AccountID != nil && *q.AccountID == first.ID
	})).Return([]sqlconfig.TypeTotal{
		{Type: sqlconfig.TransactionTypeCredit, Total: decimal.RequireFromString("25.00"), Count: 1},
	}, nil)
	mockTransactions.EXPECT().TotalsByType(mock.Anything, mock.MatchedBy(func(q sqlconfig.TransactionQuery) bool {
		return q.AccountID != nil && *q.AccountID == second.ID
	})).Return([]sqlconfig.TypeTotal{
		{Type: sqlconfig.TransactionTypeDebit, Total: decimal.RequireFromString("10.00"), Count: 1},
	}, nil)

	balances, err := svc.ListBalances(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, balances, 2)
	assert.Equal(t, first.ID, balances[0].AccountID, "account order preserved")
	assert.True(t, balances[0].Balance.Equal(decimal.RequireFromString("125.00")))
	assert.Equal(t, second.ID, balances[1].AccountID)
	assert.True(t, balances[1].Balance.Equal(decimal.RequireFromString("40.00")))
}

func TestListBalances_PartialFailureIsolated(t *testing.T) {
	svc, mockAccounts, mockTransactions := newBalanceTestService(t)

	userID := uuid.Must(uuid.NewV4())
	healthy := makeAccountRow(userID, "100.00")
	failing := makeAccountRow(userID, "75.00")

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Account{healthy, failing}, nil)

	mockTransactions.EXPECT().TotalsByType(mock.Anything, mock.MatchedBy(func(q sqlconfig.TransactionQuery) bool {
		return q.AccountID != nil && *q.AccountID == healthy.ID
	})).Return([]sqlconfig.TypeTotal{
		{Type: sqlconfig.TransactionTypeCredit, Total: decimal.RequireFromString("20.00"), Count: 1},
	}, nil)
	mockTransactions.EXPECT().TotalsByType(mock.Anything, mock.MatchedBy(func(q sqlconfig.TransactionQuery) bool {
		return q.AccountID != nil && *q.AccountID == failing.ID
	})).Return(nil, errors.New("query timeout"))

	balances, err := svc.ListBalances(context.Background(), userID)

	assert.NoError(t, err, "one failed account must not fail the whole listing")
	assert.Len(t, balances, 2)
	assert.True(t, balances[0].Balance.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, balances[1].Balance.Equal(failing.OpeningBalance), "degraded entry reports opening balance only")
	assert.True(t, balances[1].TotalCredit.IsZero())
	assert.True(t, balances[1].TotalDebit.IsZero())
}

func TestListBalances_ListError(t *testing.T) {
	svc, mockAccounts, _ := newBalanceTestService(t)

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	balances, err := svc.ListBalances(context.Background(), uuid.Must(uuid.NewV4()))

	assert.Error(t, err)
	assert.Nil(t, balances)
}
