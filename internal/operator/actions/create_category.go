package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type CreateCategory struct {
	UserID uuid.UUID
	Name   string
	Icon   string
	Color  string

	// CreatedID is set after a successful Perform.
	CreatedID uuid.UUID

	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(c.Name) == 0 {
		return &service.ValidationError{Reason: "category name must not be empty"}
	}

	id, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID: c.UserID,
		Name:   c.Name,
		Icon:   c.Icon,
		Color:  c.Color,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
