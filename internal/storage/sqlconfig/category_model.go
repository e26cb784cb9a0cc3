package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	Deleted   bool      `db:"deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID uuid.UUID
	Name   string
	Icon   string
	Color  string
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	UserID uuid.UUID
	// IncludeDeleted also returns soft-deleted categories, which the stats
	// aggregator needs to label groups whose category was removed mid-query.
	IncludeDeleted bool
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	// FindByID retrieves a category by primary key, soft-deleted rows included.
	// Returns nil without error when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	// List returns categories ordered by creation time ascending.
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	SetDeleted(ctx context.Context, id uuid.UUID) error
}
