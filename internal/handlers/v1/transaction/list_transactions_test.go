package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, userID uuid.UUID, filter *service.TransactionListFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, userID, filter, cursor)
	transactions, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return transactions, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parse unit tests --

func TestParseListTransactionsCursor_NoCursor(t *testing.T) {
	cursor, err := parseListTransactionsCursor(&ListTransactionsBody{})
	assert.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestParseListTransactionsCursor_WithCursor(t *testing.T) {
	cursorMaxTime := "2025-06-15T08:00:00Z"

	cursor, err := parseListTransactionsCursor(&ListTransactionsBody{
		Cursor: &ListTransactionsCursor{
			Position:        40,
			Limit:           10,
			MaxCreationTime: cursorMaxTime,
		},
	})

	assert.NoError(t, err)
	expectedMax, _ := time.Parse(time.RFC3339, cursorMaxTime)
	assert.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, expectedMax, cursor.MaxCreationTime)
}

func TestParseListTransactionsCursor_InvalidMaxCreationTime(t *testing.T) {
	_, err := parseListTransactionsCursor(&ListTransactionsBody{
		Cursor: &ListTransactionsCursor{
			Limit:           10,
			MaxCreationTime: "not-a-date",
		},
	})
	assert.Error(t, err)
}

func TestParseListTransactionsFilter_NoFilter(t *testing.T) {
	filter, err := parseListTransactionsFilter(&ListTransactionsBody{})
	assert.NoError(t, err)
	assert.Nil(t, filter)
}

func TestParseListTransactionsFilter_AllFields(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	filter, err := parseListTransactionsFilter(&ListTransactionsBody{
		Filter: &ListTransactionsFilter{
			AccountID:  accountID.String(),
			CategoryID: categoryID.String(),
			Type:       "credit",
			DateFrom:   "2025-06-01",
			DateTo:     "2025-06-30",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, &accountID, filter.AccountID)
	assert.Equal(t, &categoryID, filter.CategoryID)
	assert.Equal(t, service.TransactionTypeCredit, *filter.Type)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *filter.DateTo)
}

func TestParseListTransactionsFilter_InvalidAccountID(t *testing.T) {
	_, err := parseListTransactionsFilter(&ListTransactionsBody{
		Filter: &ListTransactionsFilter{AccountID: "not-a-uuid"},
	})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	transactionID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, (*service.TransactionListFilter)(nil), (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{
			{
				ID:              transactionID,
				UserID:          userID,
				AccountID:       uuid.Must(uuid.NewV4()),
				Amount:          decimal.RequireFromString("10.00"),
				Description:     "Coffee",
				TransactionDate: now,
				Type:            service.TransactionTypeDebit,
				PaymentMethod:   service.PaymentMethodCard,
				CreatedAt:       now,
			},
		}, (*service.TransactionCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", userHeader(userID), ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, transactionID.String(), body.Transactions[0].ID)
	assert.Equal(t, "10.00", body.Transactions[0].Amount)
	assert.Equal(t, "debit", body.Transactions[0].Type)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_MultiplePages(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svcDefaultLimit := 20

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, mock.Anything, mock.Anything).
		Return([]service.Transaction{}, &service.TransactionCursor{
			Position:        svcDefaultLimit,
			Limit:           svcDefaultLimit,
			MaxCreationTime: now,
		}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", userHeader(userID), ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, svcDefaultLimit, body.NextCursor.Position)
	assert.Equal(t, now.Format(time.RFC3339), body.NextCursor.MaxCreationTime)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_FilterForwarded(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, mock.MatchedBy(func(f *service.TransactionListFilter) bool {
		return f != nil && f.AccountID != nil && *f.AccountID == accountID &&
			f.Type != nil && *f.Type == service.TransactionTypeDebit
	}), (*service.TransactionCursor)(nil)).
		Return(([]service.Transaction)(nil), (*service.TransactionCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", userHeader(userID), ListTransactionsBody{
		Filter: &ListTransactionsFilter{
			AccountID: accountID.String(),
			Type:      "debit",
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(([]service.Transaction)(nil), (*service.TransactionCursor)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", userHeader(uuid.Must(uuid.NewV4())), ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidCursorTime(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", userHeader(uuid.Must(uuid.NewV4())), ListTransactionsBody{
		Cursor: &ListTransactionsCursor{
			Limit:           10,
			MaxCreationTime: "not-a-date",
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}
