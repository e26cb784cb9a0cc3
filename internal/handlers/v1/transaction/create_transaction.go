package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID       string `json:"accountID" required:"true" doc:"Account UUID"`
	CategoryID      string `json:"categoryID,omitempty" doc:"Category UUID, optional"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal amount, at most 2 fractional digits"`
	Description     string `json:"description" required:"true" maxLength:"255" doc:"Transaction description"`
	TransactionDate string `json:"transactionDate,omitempty" format:"date" doc:"Ledger date, defaults to today"`
	Type            string `json:"type" required:"true" enum:"credit,debit" doc:"Transaction type"`
	PaymentMethod   string `json:"paymentMethod" required:"true" enum:"cash,card,upi,other" doc:"Payment method"`
	Notes           string `json:"notes,omitempty" doc:"Free-text notes"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input into an action.
func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != "" {
		parsed, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		categoryID = &parsed
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	transactionType, err := service.ParseTransactionType(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}
	paymentMethod, err := service.ParsePaymentMethod(input.Body.PaymentMethod)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid paymentMethod", err)
	}

	transactionDate := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.DateOnly, input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	return &actions.CreateTransaction{
		UserID:          userID,
		AccountID:       accountID,
		CategoryID:      categoryID,
		Amount:          amount,
		Description:     input.Body.Description,
		TransactionDate: transactionDate,
		Type:            transactionType,
		PaymentMethod:   paymentMethod,
		Notes:           input.Body.Notes,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{ID: action.CreatedID.String()},
	}, nil
}
