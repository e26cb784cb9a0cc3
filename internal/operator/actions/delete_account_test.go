package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newDeleteAccountWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockIAccountTable, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockAccounts := sqlconfig.NewMockIAccountTable(t)
	mockTransactions := sqlconfig.NewMockITransactionTable(t)
	writer := &storage.Writer{Accounts: mockAccounts, Transactions: mockTransactions}
	return writer, mockAccounts, mockTransactions
}

func TestDeleteAccount_Success(t *testing.T) {
	writer, mockAccounts, mockTransactions := newDeleteAccountWriter(t)

	userID := uuid.Must(uuid.NewV4())
	account := &sqlconfig.Account{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: userID,
		Name:   "Savings",
		Type:   sqlconfig.AccountTypeBank,
	}
	firstActive := &sqlconfig.Account{ID: uuid.Must(uuid.NewV4()), UserID: userID}

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	mockAccounts.EXPECT().FirstActive(mock.Anything, userID).Return(firstActive, nil)
	mockTransactions.EXPECT().CountByAccount(mock.Anything, account.ID).Return(int64(0), nil)
	mockAccounts.EXPECT().SetDeleted(mock.Anything, account.ID).Return(nil)

	action := &DeleteAccount{UserID: userID, AccountID: account.ID}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	writer, mockAccounts, _ := newDeleteAccountWriter(t)

	mockAccounts.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil)

	action := &DeleteAccount{UserID: uuid.Must(uuid.NewV4()), AccountID: uuid.Must(uuid.NewV4())}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestDeleteAccount_ForeignOwner(t *testing.T) {
	writer, mockAccounts, _ := newDeleteAccountWriter(t)

	account := &sqlconfig.Account{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: uuid.Must(uuid.NewV4()),
		Name:   "Savings",
		Type:   sqlconfig.AccountTypeBank,
	}

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	action := &DeleteAccount{UserID: uuid.Must(uuid.NewV4()), AccountID: account.ID}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestDeleteAccount_DefaultAccountDenied(t *testing.T) {
	writer, mockAccounts, mockTransactions := newDeleteAccountWriter(t)

	userID := uuid.Must(uuid.NewV4())
	account := &sqlconfig.Account{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: userID,
		Name:   "Cash",
		Type:   sqlconfig.AccountTypeCash,
	}

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	mockAccounts.EXPECT().FirstActive(mock.Anything, userID).Return(account, nil)
	mockTransactions.EXPECT().CountByAccount(mock.Anything, account.ID).Return(int64(0), nil)

	action := &DeleteAccount{UserID: userID, AccountID: account.ID}
	err := action.Perform(context.Background(), writer)

	var conflict *service.ConflictError
	assert.ErrorAs(t, err, &conflict)
	mockAccounts.AssertNotCalled(t, "SetDeleted")
}

func TestDeleteAccount_WithTransactionsDenied(t *testing.T) {
	writer, mockAccounts, mockTransactions := newDeleteAccountWriter(t)

	userID := uuid.Must(uuid.NewV4())
	account := &sqlconfig.Account{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: userID,
		Name:   "Savings",
		Type:   sqlconfig.AccountTypeBank,
	}

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	mockAccounts.EXPECT().FirstActive(mock.Anything, userID).Return(account, nil)
	mockTransactions.EXPECT().CountByAccount(mock.Anything, account.ID).Return(int64(7), nil)

	action := &DeleteAccount{UserID: userID, AccountID: account.ID}
	err := action.Perform(context.Background(), writer)

	var conflict *service.ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "account has 7 transaction(s)", conflict.Reason)
	mockAccounts.AssertNotCalled(t, "SetDeleted")
}

func TestDeleteAccount_CountError(t *testing.T) {
	writer, mockAccounts, mockTransactions := newDeleteAccountWriter(t)

	userID := uuid.Must(uuid.NewV4())
	account := &sqlconfig.Account{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: userID,
		Name:   "Savings",
		Type:   sqlconfig.AccountTypeBank,
	}

	mockAccounts.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	mockAccounts.EXPECT().FirstActive(mock.Anything, userID).Return(account, nil)
	mockTransactions.EXPECT().CountByAccount(mock.Anything, account.ID).
		Return(int64(0), errors.New("database unavailable"))

	action := &DeleteAccount{UserID: userID, AccountID: account.ID}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	mockAccounts.AssertNotCalled(t, "SetDeleted")
}
