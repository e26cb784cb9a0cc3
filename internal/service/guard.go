package service

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// CanDeleteAccount applies the account deletion gates. firstActiveID is the
// ID of the user's chronologically first active account, transactionCount the
// number of non-deleted transactions referencing the account. Returns a
// ConflictError naming the denial reason, or nil when deletion may proceed.
//
// The default-account gate is checked first; either gate alone denies.
func CanDeleteAccount(account *sqlconfig.Account, firstActiveID uuid.UUID, transactionCount int64) error {
	if account.ID == firstActiveID &&
		strings.EqualFold(account.Name, "cash") &&
		account.Type == sqlconfig.AccountTypeCash {
		return &ConflictError{Reason: "default account cannot be deleted"}
	}

	if transactionCount > 0 {
		return &ConflictError{Reason: fmt.Sprintf("account has %d transaction(s)", transactionCount)}
	}

	return nil
}
