package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// balanceFanOutLimit bounds how many per-account balance queries run at once.
const balanceFanOutLimit = 8

// Balance is a point-in-time derived view of an account: the opening balance
// plus the signed sums of its non-deleted transactions.
type Balance struct {
	AccountID          uuid.UUID
	AccountName        string
	OpeningBalance     decimal.Decimal
	OpeningBalanceDate *time.Time
	TotalCredit        decimal.Decimal
	TotalDebit         decimal.Decimal
	Balance            decimal.Decimal
}

// BalanceService derives account balances from the ledger.
type BalanceService struct {
	storage *storage.Storage
	logger  *logrus.Logger
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(store *storage.Storage, logger *logrus.Logger) *BalanceService {
	return &BalanceService{storage: store, logger: logger}
}

// GetBalance computes the current balance of an active account owned by the
// user. Missing, soft-deleted, and foreign-owned accounts all report
// ErrAccountNotFound.
func (s *BalanceService) GetBalance(ctx context.Context, userID, accountID uuid.UUID) (*Balance, error) {
	row, err := s.storage.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if row == nil || row.Deleted || row.UserID != userID {
		return nil, ErrAccountNotFound
	}

	return s.balanceFor(ctx, row)
}

// balanceFor sums the account's non-deleted transactions per type and folds
// them into the opening balance. When an opening balance date is set,
// transactions dated strictly before it are excluded from both sums.
func (s *BalanceService) balanceFor(ctx context.Context, account *sqlconfig.Account) (*Balance, error) {
	query := sqlconfig.TransactionQuery{
		UserID:    account.UserID,
		AccountID: &account.ID,
		DateFrom:  account.OpeningBalanceDate,
	}

	totals, err := s.storage.Transactions.TotalsByType(ctx, query)
	if err != nil {
		return nil, err
	}

	totalCredit := decimal.Zero
	totalDebit := decimal.Zero
	for _, row := range totals {
		switch row.Type {
		case sqlconfig.TransactionTypeCredit:
			totalCredit = row.Total
		case sqlconfig.TransactionTypeDebit:
			totalDebit = row.Total
		}
	}

	return &Balance{
		AccountID:          account.ID,
		AccountName:        account.Name,
		OpeningBalance:     account.OpeningBalance,
		OpeningBalanceDate: account.OpeningBalanceDate,
		TotalCredit:        totalCredit,
		TotalDebit:         totalDebit,
		Balance:            account.OpeningBalance.Add(totalCredit).Sub(totalDebit),
	}, nil
}

// ListBalances computes one balance per active account of the user, ordered
// by account creation time ascending. Accounts are independent ledgers: a
// failure computing one balance is logged and replaced with an
// opening-balance-only result so the other accounts still report.
func (s *BalanceService) ListBalances(ctx context.Context, userID uuid.UUID) ([]Balance, error) {
	accounts, err := s.storage.Accounts.List(ctx, &sqlconfig.AccountFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	results := make([]Balance, len(accounts))

	var group errgroup.Group
	group.SetLimit(balanceFanOutLimit)
	for i, account := range accounts {
		group.Go(func() error {
			balance, err := s.balanceFor(ctx, account)
			if err != nil {
				s.logger.WithError(err).WithFields(logrus.Fields{
					"account_id": account.ID,
					"user_id":    userID,
				}).Warn("balance computation failed, reporting opening balance only")
				results[i] = openingBalanceOnly(account)
				return nil
			}
			results[i] = *balance
			return nil
		})
	}
	// Per-account failures are folded into degraded results above.
	_ = group.Wait()

	return results, nil
}

func openingBalanceOnly(account *sqlconfig.Account) Balance {
	return Balance{
		AccountID:          account.ID,
		AccountName:        account.Name,
		OpeningBalance:     account.OpeningBalance,
		OpeningBalanceDate: account.OpeningBalanceDate,
		TotalCredit:        decimal.Zero,
		TotalDebit:         decimal.Zero,
		Balance:            account.OpeningBalance,
	}
}
