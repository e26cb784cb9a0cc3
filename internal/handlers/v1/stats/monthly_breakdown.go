package stats

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetMonthlyBreakdownInput is the Huma input for the per-month summary.
type GetMonthlyBreakdownInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	Year   int    `query:"year" required:"false" minimum:"1970" maximum:"9999" doc:"Calendar year, defaults to the current year"`
}

// MonthTotal is the API model for one calendar month of activity.
type MonthTotal struct {
	Month int    `json:"month" doc:"Month number, 1 through 12"`
	Total string `json:"total" doc:"Decimal sum of amounts in the month"`
	Count int64  `json:"count" doc:"Number of transactions in the month"`
}

// GetMonthlyBreakdownResponseBody is the response body for the per-month summary.
type GetMonthlyBreakdownResponseBody struct {
	Months []MonthTotal `json:"months" doc:"Months with activity, in calendar order"`
}

// GetMonthlyBreakdownOutput is the Huma output for the per-month summary.
type GetMonthlyBreakdownOutput struct {
	Body GetMonthlyBreakdownResponseBody
}

// monthlyBreakdownGetter is the interface for computing the per-month summary.
type monthlyBreakdownGetter interface {
	GetMonthlyBreakdown(ctx context.Context, userID uuid.UUID, year int) ([]service.MonthTotal, error)
}

// GetMonthlyBreakdownHandler handles GET /v1/stats/monthly.
type GetMonthlyBreakdownHandler struct {
	StatsService monthlyBreakdownGetter
}

// NewGetMonthlyBreakdownHandler creates a new GetMonthlyBreakdownHandler.
func NewGetMonthlyBreakdownHandler(svc monthlyBreakdownGetter) *GetMonthlyBreakdownHandler {
	return &GetMonthlyBreakdownHandler{StatsService: svc}
}

// Register registers the monthly breakdown endpoint with the Huma API.
func (h *GetMonthlyBreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-breakdown",
		Method:      http.MethodGet,
		Path:        "/v1/stats/monthly",
		Summary:     "Get monthly breakdown",
		Description: "Totals the user's transactions per calendar month of one year. Months without activity are omitted.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

func (h *GetMonthlyBreakdownHandler) handle(ctx context.Context, input *GetMonthlyBreakdownInput) (*GetMonthlyBreakdownOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getMonthlyBreakdownMs")
	}
	months, err := h.StatsService.GetMonthlyBreakdown(ctx, userID, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute monthly breakdown")
	}

	resp := GetMonthlyBreakdownResponseBody{
		Months: make([]MonthTotal, len(months)),
	}
	for i, month := range months {
		resp.Months[i] = MonthTotal{
			Month: month.Month,
			Total: month.Total.StringFixed(2),
			Count: month.Count,
		}
	}

	return &GetMonthlyBreakdownOutput{Body: resp}, nil
}
