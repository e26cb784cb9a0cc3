package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// GetCategory retrieves an active category owned by the user.
func (s *CategoryService) GetCategory(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.Deleted || row.UserID != userID {
		return nil, ErrCategoryNotFound
	}

	category := categoryFromStorage(row)
	return &category, nil
}

// ListCategories returns the user's active categories ordered by creation
// time ascending.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, &sqlconfig.CategoryFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = categoryFromStorage(row)
	}

	return converted, nil
}
