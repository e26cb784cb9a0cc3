package balance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetBalanceInput is the Huma input for fetching a single account balance.
type GetBalanceInput struct {
	UserID    string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	AccountID string `path:"accountID" doc:"Account UUID"`
}

// GetBalanceOutput is the Huma output for fetching a single account balance.
type GetBalanceOutput struct {
	Body Balance
}

// balanceGetter is the interface for computing one account balance.
type balanceGetter interface {
	GetBalance(ctx context.Context, userID, accountID uuid.UUID) (*service.Balance, error)
}

// GetBalanceHandler handles GET /v1/account/{accountID}/balance.
type GetBalanceHandler struct {
	BalanceService balanceGetter
}

// NewGetBalanceHandler creates a new GetBalanceHandler.
func NewGetBalanceHandler(svc balanceGetter) *GetBalanceHandler {
	return &GetBalanceHandler{BalanceService: svc}
}

// Register registers the get balance endpoint with the Huma API.
func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountID}/balance",
		Summary:     "Get account balance",
		Description: "Computes the current balance of an account from its opening balance and ledger.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getBalanceMs")
	}
	balance, err := h.BalanceService.GetBalance(ctx, userID, accountID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute balance")
	}

	return &GetBalanceOutput{Body: fromService(*balance)}, nil
}
