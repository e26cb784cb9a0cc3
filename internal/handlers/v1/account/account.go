package account

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

// Account is the API response model for an account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID                 string `json:"id" doc:"Account UUID"`
	Name               string `json:"name" doc:"Account name"`
	Type               string `json:"type" doc:"Account type: cash, bank, card, other"`
	OpeningBalance     string `json:"openingBalance" doc:"Decimal opening balance"`
	OpeningBalanceDate string `json:"openingBalanceDate,omitempty" doc:"Opening balance effective date (YYYY-MM-DD)"`
	CreatedAt          string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(account service.Account) Account {
	resp := Account{
		ID:             account.ID.String(),
		Name:           account.Name,
		Type:           account.Type.String(),
		OpeningBalance: account.OpeningBalance.StringFixed(2),
		CreatedAt:      account.CreatedAt.Format(time.RFC3339),
	}
	if account.OpeningBalanceDate != nil {
		resp.OpeningBalanceDate = account.OpeningBalanceDate.Format(time.DateOnly)
	}
	return resp
}
