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

// ListBalancesInput is the Huma input for fetching all account balances.
type ListBalancesInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
}

// ListBalancesResponseBody is the response body for fetching all balances.
type ListBalancesResponseBody struct {
	Balances []Balance `json:"balances" doc:"One balance per active account, ordered by account creation time"`
}

// ListBalancesOutput is the Huma output for fetching all account balances.
type ListBalancesOutput struct {
	Body ListBalancesResponseBody
}

// balanceLister is the interface for computing all account balances.
type balanceLister interface {
	ListBalances(ctx context.Context, userID uuid.UUID) ([]service.Balance, error)
}

// ListBalancesHandler handles GET /v1/balances.
type ListBalancesHandler struct {
	BalanceService balanceLister
}

// NewListBalancesHandler creates a new ListBalancesHandler.
func NewListBalancesHandler(svc balanceLister) *ListBalancesHandler {
	return &ListBalancesHandler{BalanceService: svc}
}

// Register registers the list balances endpoint with the Huma API.
func (h *ListBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-balances",
		Method:      http.MethodGet,
		Path:        "/v1/balances",
		Summary:     "List account balances",
		Description: "Computes the current balance of every active account of the user.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

func (h *ListBalancesHandler) handle(ctx context.Context, input *ListBalancesInput) (*ListBalancesOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBalancesMs")
	}
	balances, err := h.BalanceService.ListBalances(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute balances")
	}

	if logData != nil {
		logData.AddData("balanceCount", len(balances))
	}

	resp := ListBalancesResponseBody{
		Balances: make([]Balance, len(balances)),
	}
	for i, balance := range balances {
		resp.Balances[i] = fromService(balance)
	}

	return &ListBalancesOutput{Body: resp}, nil
}
