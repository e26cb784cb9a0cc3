package category

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

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	Icon      string `json:"icon,omitempty" doc:"Icon token"`
	Color     string `json:"color,omitempty" doc:"Color hex"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(category service.Category) Category {
	return Category{
		ID:        category.ID.String(),
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}
