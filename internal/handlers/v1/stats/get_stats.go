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

// GetStatsInput is the Huma input for the grouped ledger summary.
type GetStatsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	From   string `query:"from" required:"false" format:"date" doc:"Inclusive window start date"`
	To     string `query:"to" required:"false" format:"date" doc:"Inclusive window end date"`
}

// GetStatsResponseBody is the response body for the grouped ledger summary.
type GetStatsResponseBody struct {
	TotalCredit     string               `json:"totalCredit" doc:"Decimal sum of all credits in the window"`
	TotalDebit      string               `json:"totalDebit" doc:"Decimal sum of all debits in the window"`
	ByCategory      []CategoryGroup      `json:"byCategory" doc:"Per-category totals, split by type"`
	ByPaymentMethod []PaymentMethodGroup `json:"byPaymentMethod" doc:"Per-payment-method totals, split by type"`
}

// GetStatsOutput is the Huma output for the grouped ledger summary.
type GetStatsOutput struct {
	Body GetStatsResponseBody
}

// statsGetter is the interface for computing the grouped summary.
type statsGetter interface {
	GetStats(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*service.Stats, error)
}

// GetStatsHandler handles GET /v1/stats.
type GetStatsHandler struct {
	StatsService statsGetter
}

// NewGetStatsHandler creates a new GetStatsHandler.
func NewGetStatsHandler(svc statsGetter) *GetStatsHandler {
	return &GetStatsHandler{StatsService: svc}
}

// Register registers the stats endpoint with the Huma API.
func (h *GetStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-stats",
		Method:      http.MethodGet,
		Path:        "/v1/stats",
		Summary:     "Get ledger statistics",
		Description: "Groups the user's transactions by category and payment method within an optional date window.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

func (h *GetStatsHandler) handle(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
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
		stopTimer = logData.AddTiming("getStatsMs")
	}
	stats, err := h.StatsService.GetStats(ctx, userID, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute stats")
	}

	if logData != nil {
		logData.AddData("categoryGroupCount", len(stats.ByCategory))
	}

	return &GetStatsOutput{Body: GetStatsResponseBody{
		TotalCredit:     stats.TotalCredit.StringFixed(2),
		TotalDebit:      stats.TotalDebit.StringFixed(2),
		ByCategory:      categoryGroupsFromService(stats.ByCategory),
		ByPaymentMethod: paymentMethodGroupsFromService(stats.ByPaymentMethod),
	}}, nil
}
