package service

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func makeCashAccount() *sqlconfig.Account {
	return &sqlconfig.Account{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Cash",
		Type: sqlconfig.AccountTypeCash,
	}
}

func TestCanDeleteAccount_Allowed(t *testing.T) {
	account := &sqlconfig.Account{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Savings",
		Type: sqlconfig.AccountTypeBank,
	}

	err := CanDeleteAccount(account, uuid.Must(uuid.NewV4()), 0)
	assert.NoError(t, err)
}

func TestCanDeleteAccount_DefaultAccountDenied(t *testing.T) {
	account := makeCashAccount()

	err := CanDeleteAccount(account, account.ID, 0)

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "default account cannot be deleted", conflict.Reason)
}

func TestCanDeleteAccount_DefaultMatchIsCaseInsensitive(t *testing.T) {
	account := makeCashAccount()
	account.Name = "cAsH"

	err := CanDeleteAccount(account, account.ID, 0)
	assert.Error(t, err)
}

func TestCanDeleteAccount_CashNameButNotFirst(t *testing.T) {
	account := makeCashAccount()

	err := CanDeleteAccount(account, uuid.Must(uuid.NewV4()), 0)
	assert.NoError(t, err, "only the first active account can be the default")
}

func TestCanDeleteAccount_FirstButNotCashType(t *testing.T) {
	account := makeCashAccount()
	account.Type = sqlconfig.AccountTypeBank

	err := CanDeleteAccount(account, account.ID, 0)
	assert.NoError(t, err)
}

func TestCanDeleteAccount_WithTransactionsDenied(t *testing.T) {
	account := &sqlconfig.Account{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Savings",
		Type: sqlconfig.AccountTypeBank,
	}

	err := CanDeleteAccount(account, uuid.Must(uuid.NewV4()), 3)

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "account has 3 transaction(s)", conflict.Reason)
}

func TestCanDeleteAccount_DefaultGateCheckedFirst(t *testing.T) {
	account := makeCashAccount()

	err := CanDeleteAccount(account, account.ID, 5)

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "default account cannot be deleted", conflict.Reason)
}
