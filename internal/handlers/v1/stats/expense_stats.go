package stats

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

// GetExpenseStatsInput is the Huma input for the expense-only summary.
type GetExpenseStatsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	From   string `query:"from" required:"false" format:"date" doc:"Inclusive window start date"`
	To     string `query:"to" required:"false" format:"date" doc:"Inclusive window end date"`
}

// GetExpenseStatsResponseBody is the response body for the expense-only summary.
type GetExpenseStatsResponseBody struct {
	Total           string               `json:"total" doc:"Decimal sum of all debits in the window"`
	ByCategory      []CategoryGroup      `json:"byCategory" doc:"Per-category debit totals"`
	ByPaymentMethod []PaymentMethodGroup `json:"byPaymentMethod" doc:"Per-payment-method debit totals"`
}

// GetExpenseStatsOutput is the Huma output for the expense-only summary.
type GetExpenseStatsOutput struct {
	Body GetExpenseStatsResponseBody
}

// expenseStatsGetter is the interface for computing the expense summary.
type expenseStatsGetter interface {
	GetExpenseStats(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*service.ExpenseStats, error)
}

// GetExpenseStatsHandler handles GET /v1/expenses/stats.
type GetExpenseStatsHandler struct {
	StatsService expenseStatsGetter
}

// NewGetExpenseStatsHandler creates a new GetExpenseStatsHandler.
func NewGetExpenseStatsHandler(svc expenseStatsGetter) *GetExpenseStatsHandler {
	return &GetExpenseStatsHandler{StatsService: svc}
}

// Register registers the expense stats endpoint with the Huma API.
func (h *GetExpenseStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense-stats",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/stats",
		Summary:     "Get expense statistics",
		Description: "Groups the user's debit transactions by category and payment method within an optional date window.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

func (h *GetExpenseStatsHandler) handle(ctx context.Context, input *GetExpenseStatsInput) (*GetExpenseStatsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}
	from, to, err := parseDateWindow(input.From, input.To)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getExpenseStatsMs")
	}
	stats, err := h.StatsService.GetExpenseStats(ctx, userID, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute expense stats")
	}

	return &GetExpenseStatsOutput{Body: GetExpenseStatsResponseBody{
		Total:           stats.Total.StringFixed(2),
		ByCategory:      categoryGroupsFromService(stats.ByCategory),
		ByPaymentMethod: paymentMethodGroupsFromService(stats.ByPaymentMethod),
	}}, nil
}
