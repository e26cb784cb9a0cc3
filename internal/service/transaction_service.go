package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction retrieves an active transaction owned by the user. Missing,
// soft-deleted, and foreign-owned transactions all report
// ErrTransactionNotFound.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.Deleted || row.UserID != userID {
		return nil, ErrTransactionNotFound
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// ListTransactions returns a page of the user's transactions using
// cursor-based pagination, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, listFilter *TransactionListFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	query := sqlconfig.TransactionQuery{
		UserID: userID,
	}
	filter := &sqlconfig.TransactionFilter{
		TransactionQuery: query,
		Limit:            limit,
		Offset:           offset,
		MaxCreationTime:  maxCreationTime,
	}
	if listFilter != nil {
		filter.AccountID = listFilter.AccountID
		filter.CategoryID = listFilter.CategoryID
		filter.DateFrom = listFilter.DateFrom
		filter.DateTo = listFilter.DateTo
		if listFilter.Type != nil {
			storageType := transactionTypeToStorage(*listFilter.Type)
			filter.Type = &storageType
		}
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}
