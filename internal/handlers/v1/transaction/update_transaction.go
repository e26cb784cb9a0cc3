package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// UpdateTransactionBody is the request body for a partial transaction update.
// Absent fields are left untouched; an empty categoryID clears the category.
type UpdateTransactionBody struct {
	AccountID       *string `json:"accountID,omitempty" doc:"Move the transaction to this account"`
	CategoryID      *string `json:"categoryID,omitempty" doc:"Category UUID, empty string clears the category"`
	Amount          *string `json:"amount,omitempty" doc:"Positive decimal amount, at most 2 fractional digits"`
	Description     *string `json:"description,omitempty" maxLength:"255" doc:"Transaction description"`
	TransactionDate *string `json:"transactionDate,omitempty" format:"date" doc:"Ledger date"`
	Type            *string `json:"type,omitempty" enum:"credit,debit" doc:"Transaction type"`
	PaymentMethod   *string `json:"paymentMethod,omitempty" enum:"cash,card,upi,other" doc:"Payment method"`
	Notes           *string `json:"notes,omitempty" doc:"Free-text notes"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID        string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	TransactionID string `path:"transactionID" doc:"Transaction UUID"`
	Body          UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{transactionID}.
type UpdateTransactionHandler struct {
	Operator actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{transactionID}",
		Summary:     "Update transaction",
		Description: "Partially updates one of the user's transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseUpdateTransactionInput parses and validates the API input into an action.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (*actions.UpdateTransaction, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}
	transactionID, err := uuid.FromString(input.TransactionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionID", err)
	}

	action := &actions.UpdateTransaction{
		UserID:        userID,
		TransactionID: transactionID,
	}

	if input.Body.AccountID != nil {
		accountID, err := uuid.FromString(*input.Body.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		action.AccountID = omit.From(accountID)
	}
	if input.Body.CategoryID != nil {
		if *input.Body.CategoryID == "" {
			action.CategoryID = omit.From[*uuid.UUID](nil)
		} else {
			categoryID, err := uuid.FromString(*input.Body.CategoryID)
			if err != nil {
				return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
			}
			action.CategoryID = omit.From(&categoryID)
		}
	}
	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		action.Amount = omit.From(amount)
	}
	if input.Body.Description != nil {
		action.Description = omit.From(*input.Body.Description)
	}
	if input.Body.TransactionDate != nil {
		transactionDate, err := time.Parse(time.DateOnly, *input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
		action.TransactionDate = omit.From(transactionDate)
	}
	if input.Body.Type != nil {
		transactionType, err := service.ParseTransactionType(*input.Body.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		action.Type = omit.From(transactionType)
	}
	if input.Body.PaymentMethod != nil {
		paymentMethod, err := service.ParsePaymentMethod(*input.Body.PaymentMethod)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid paymentMethod", err)
		}
		action.PaymentMethod = omit.From(paymentMethod)
	}
	if input.Body.Notes != nil {
		action.Notes = omit.From(*input.Body.Notes)
	}

	return action, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	action, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
