package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// actionProcessor is the interface for dispatching write actions to the
// operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Account UUID"`
	CategoryID      string `json:"categoryID,omitempty" doc:"Category UUID, absent when uncategorized"`
	Amount          string `json:"amount" doc:"Decimal amount, always positive"`
	Description     string `json:"description" doc:"Transaction description"`
	TransactionDate string `json:"transactionDate" doc:"Ledger date (YYYY-MM-DD)"`
	Type            string `json:"type" doc:"Transaction type: credit, debit"`
	PaymentMethod   string `json:"paymentMethod" doc:"Payment method: cash, card, upi, other"`
	Notes           string `json:"notes,omitempty" doc:"Free-text notes"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(transaction service.Transaction) Transaction {
	resp := Transaction{
		ID:              transaction.ID.String(),
		AccountID:       transaction.AccountID.String(),
		Amount:          transaction.Amount.StringFixed(2),
		Description:     transaction.Description,
		TransactionDate: transaction.TransactionDate.Format(time.DateOnly),
		Type:            transaction.Type.String(),
		PaymentMethod:   transaction.PaymentMethod.String(),
		Notes:           transaction.Notes,
		CreatedAt:       transaction.CreatedAt.Format(time.RFC3339),
	}
	if transaction.CategoryID != nil {
		resp.CategoryID = transaction.CategoryID.String()
	}
	return resp
}
