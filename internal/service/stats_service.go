package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// UncategorizedLabel is the display name for the pseudo-group of
// transactions without a category.
const UncategorizedLabel = "Uncategorized"

// CategoryGroup is one row of a per-category aggregate, split by transaction
// type. CategoryID is nil for the uncategorized pseudo-group.
type CategoryGroup struct {
	CategoryID *uuid.UUID
	Name       string
	Icon       string
	Color      string
	Type       TransactionType
	Total      decimal.Decimal
	Count      int64
}

// PaymentMethodGroup is one row of a per-payment-method aggregate, split by
// transaction type.
type PaymentMethodGroup struct {
	PaymentMethod PaymentMethod
	Type          TransactionType
	Total         decimal.Decimal
	Count         int64
}

// Stats is a grouped summary of a user's ledger within an optional date
// window. Groups with zero matching rows are never present.
type Stats struct {
	TotalCredit     decimal.Decimal
	TotalDebit      decimal.Decimal
	ByCategory      []CategoryGroup
	ByPaymentMethod []PaymentMethodGroup
}

// ExpenseStats is the expense-only variant of Stats, restricted to debits.
type ExpenseStats struct {
	Total           decimal.Decimal
	ByCategory      []CategoryGroup
	ByPaymentMethod []PaymentMethodGroup
}

// MonthTotal is the ledger activity of one calendar month.
type MonthTotal struct {
	Month int
	Total decimal.Decimal
	Count int64
}

// StatsService produces grouped statistics over the ledger.
type StatsService struct {
	storage *storage.Storage
}

// NewStatsService creates a new StatsService.
func NewStatsService(store *storage.Storage) *StatsService {
	return &StatsService{storage: store}
}

// GetStats groups the user's non-deleted transactions by category and by
// payment method, split by type, within the optional inclusive date window.
func (s *StatsService) GetStats(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*Stats, error) {
	query := sqlconfig.TransactionQuery{
		UserID:   userID,
		DateFrom: from,
		DateTo:   to,
	}

	typeTotals, err := s.storage.Transactions.TotalsByType(ctx, query)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
	}
	for _, row := range typeTotals {
		switch row.Type {
		case sqlconfig.TransactionTypeCredit:
			stats.TotalCredit = row.Total
		case sqlconfig.TransactionTypeDebit:
			stats.TotalDebit = row.Total
		}
	}

	stats.ByCategory, err = s.categoryGroups(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	stats.ByPaymentMethod, err = s.paymentMethodGroups(ctx, query)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetExpenseStats is the legacy expense report: the same grouping as GetStats
// restricted to debit transactions.
func (s *StatsService) GetExpenseStats(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*ExpenseStats, error) {
	debit := sqlconfig.TransactionTypeDebit
	query := sqlconfig.TransactionQuery{
		UserID:   userID,
		Type:     &debit,
		DateFrom: from,
		DateTo:   to,
	}

	typeTotals, err := s.storage.Transactions.TotalsByType(ctx, query)
	if err != nil {
		return nil, err
	}

	stats := &ExpenseStats{Total: decimal.Zero}
	for _, row := range typeTotals {
		if row.Type == sqlconfig.TransactionTypeDebit {
			stats.Total = row.Total
		}
	}

	stats.ByCategory, err = s.categoryGroups(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	stats.ByPaymentMethod, err = s.paymentMethodGroups(ctx, query)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetMonthlyBreakdown aggregates the user's non-deleted transactions of the
// given year (default: current year) per calendar month, ascending, months
// without activity omitted.
func (s *StatsService) GetMonthlyBreakdown(ctx context.Context, userID uuid.UUID, year int) ([]MonthTotal, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	query := sqlconfig.TransactionQuery{
		UserID:   userID,
		DateFrom: &from,
		DateTo:   &to,
	}

	rows, err := s.storage.Transactions.TotalsByMonth(ctx, query)
	if err != nil {
		return nil, err
	}

	months := make([]MonthTotal, len(rows))
	for i, row := range rows {
		months[i] = MonthTotal{
			Month: row.Month,
			Total: row.Total,
			Count: row.Count,
		}
	}

	return months, nil
}

func (s *StatsService) categoryGroups(ctx context.Context, userID uuid.UUID, query sqlconfig.TransactionQuery) ([]CategoryGroup, error) {
	rows, err := s.storage.Transactions.TotalsByCategory(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Soft-deleted categories stay in the index so groups whose category was
	// removed mid-query still get their label.
	categories, err := s.storage.Categories.List(ctx, &sqlconfig.CategoryFilter{
		UserID:         userID,
		IncludeDeleted: true,
	})
	if err != nil {
		return nil, err
	}
	index := make(map[uuid.UUID]*sqlconfig.Category, len(categories))
	for _, category := range categories {
		index[category.ID] = category
	}

	groups := make([]CategoryGroup, len(rows))
	for i, row := range rows {
		group := CategoryGroup{
			Name:  UncategorizedLabel,
			Type:  transactionTypeFromStorage(row.Type),
			Total: row.Total,
			Count: row.Count,
		}
		if row.CategoryID.Valid {
			id := row.CategoryID.UUID
			group.CategoryID = &id
			if category, ok := index[id]; ok {
				group.Name = category.Name
				group.Icon = category.Icon
				group.Color = category.Color
			}
		}
		groups[i] = group
	}

	return groups, nil
}

func (s *StatsService) paymentMethodGroups(ctx context.Context, query sqlconfig.TransactionQuery) ([]PaymentMethodGroup, error) {
	rows, err := s.storage.Transactions.TotalsByPaymentMethod(ctx, query)
	if err != nil {
		return nil, err
	}

	groups := make([]PaymentMethodGroup, len(rows))
	for i, row := range rows {
		groups[i] = PaymentMethodGroup{
			PaymentMethod: paymentMethodFromStorage(row.PaymentMethod),
			Type:          transactionTypeFromStorage(row.Type),
			Total:         row.Total,
			Count:         row.Count,
		}
	}

	return groups, nil
}
