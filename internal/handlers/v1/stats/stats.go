package stats

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// CategoryGroup is the API model for one per-category aggregate row.
type CategoryGroup struct {
	CategoryID string `json:"categoryID,omitempty" doc:"Category UUID, absent for the Uncategorized group"`
	Name       string `json:"name" doc:"Category name, or Uncategorized"`
	Icon       string `json:"icon,omitempty" doc:"Category icon token"`
	Color      string `json:"color,omitempty" doc:"Category color hex"`
	Type       string `json:"type" doc:"Transaction type: credit, debit"`
	Total      string `json:"total" doc:"Decimal sum of amounts"`
	Count      int64  `json:"count" doc:"Number of transactions"`
}

// PaymentMethodGroup is the API model for one per-payment-method aggregate row.
type PaymentMethodGroup struct {
	PaymentMethod string `json:"paymentMethod" doc:"Payment method: cash, card, upi, other"`
	Type          string `json:"type" doc:"Transaction type: credit, debit"`
	Total         string `json:"total" doc:"Decimal sum of amounts"`
	Count         int64  `json:"count" doc:"Number of transactions"`
}

func categoryGroupsFromService(groups []service.CategoryGroup) []CategoryGroup {
	converted := make([]CategoryGroup, len(groups))
	for i, group := range groups {
		converted[i] = CategoryGroup{
			Name:  group.Name,
			Icon:  group.Icon,
			Color: group.Color,
			Type:  group.Type.String(),
			Total: group.Total.StringFixed(2),
			Count: group.Count,
		}
		if group.CategoryID != nil {
			converted[i].CategoryID = group.CategoryID.String()
		}
	}
	return converted
}

func paymentMethodGroupsFromService(groups []service.PaymentMethodGroup) []PaymentMethodGroup {
	converted := make([]PaymentMethodGroup, len(groups))
	for i, group := range groups {
		converted[i] = PaymentMethodGroup{
			PaymentMethod: group.PaymentMethod.String(),
			Type:          group.Type.String(),
			Total:         group.Total.StringFixed(2),
			Count:         group.Count,
		}
	}
	return converted
}

// parseDateWindow parses the optional from/to query params shared by the
// stats endpoints.
func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var dateFrom, dateTo *time.Time

	if from != "" {
		parsed, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid from date", err)
		}
		dateFrom = &parsed
	}
	if to != "" {
		parsed, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid to date", err)
		}
		dateTo = &parsed
	}

	return dateFrom, dateTo, nil
}
