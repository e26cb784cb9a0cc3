package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Upper bound on created_at locked in from the first page"`
}

// ListTransactionsFilter narrows the listing. Absent fields are not applied.
type ListTransactionsFilter struct {
	AccountID  string `json:"accountID,omitempty" doc:"Only transactions of this account"`
	CategoryID string `json:"categoryID,omitempty" doc:"Only transactions of this category"`
	Type       string `json:"type,omitempty" enum:"credit,debit" doc:"Only transactions of this type"`
	DateFrom   string `json:"dateFrom,omitempty" format:"date" doc:"Only transactions on or after this date"`
	DateTo     string `json:"dateTo,omitempty" format:"date" doc:"Only transactions on or before this date"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Filter *ListTransactionsFilter `json:"filter,omitempty" doc:"Optional listing filter"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	Body   ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filter *service.TransactionListFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of transactions using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsCursor parses the request cursor.
// When a cursor is provided, limit and maxCreationTime come from it.
// Without a cursor, the service uses its default limit.
func parseListTransactionsCursor(body *ListTransactionsBody) (*service.TransactionCursor, error) {
	if body.Cursor == nil {
		return nil, nil
	}

	if body.Cursor.Position < 0 {
		return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	maxCreationTime, err := time.Parse(time.RFC3339, body.Cursor.MaxCreationTime)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
	}

	return &service.TransactionCursor{
		Position:        body.Cursor.Position,
		Limit:           body.Cursor.Limit,
		MaxCreationTime: maxCreationTime,
	}, nil
}

// parseListTransactionsFilter parses the optional listing filter.
func parseListTransactionsFilter(body *ListTransactionsBody) (*service.TransactionListFilter, error) {
	if body.Filter == nil {
		return nil, nil
	}

	filter := &service.TransactionListFilter{}

	if body.Filter.AccountID != "" {
		accountID, err := uuid.FromString(body.Filter.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid filter accountID", err)
		}
		filter.AccountID = &accountID
	}
	if body.Filter.CategoryID != "" {
		categoryID, err := uuid.FromString(body.Filter.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid filter categoryID", err)
		}
		filter.CategoryID = &categoryID
	}
	if body.Filter.Type != "" {
		transactionType, err := service.ParseTransactionType(body.Filter.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid filter type", err)
		}
		filter.Type = &transactionType
	}
	if body.Filter.DateFrom != "" {
		dateFrom, err := time.Parse(time.DateOnly, body.Filter.DateFrom)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid filter dateFrom", err)
		}
		filter.DateFrom = &dateFrom
	}
	if body.Filter.DateTo != "" {
		dateTo, err := time.Parse(time.DateOnly, body.Filter.DateTo)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid filter dateTo", err)
		}
		filter.DateTo = &dateTo
	}

	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}
	requestCursor, err := parseListTransactionsCursor(&input.Body)
	if err != nil {
		return nil, err
	}
	requestFilter, err := parseListTransactionsFilter(&input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, userID, requestFilter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, transaction := range transactions {
		resp.Transactions[i] = fromService(transaction)
	}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
