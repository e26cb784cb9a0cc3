package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newDeleteCategoryWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockICategoryTable, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockCategories := sqlconfig.NewMockICategoryTable(t)
	mockTransactions := sqlconfig.NewMockITransactionTable(t)
	writer := &storage.Writer{Categories: mockCategories, Transactions: mockTransactions}
	return writer, mockCategories, mockTransactions
}

func TestDeleteCategory_ClearsReferencesBeforeDeleting(t *testing.T) {
	writer, mockCategories, mockTransactions := newDeleteCategoryWriter(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	var calls []string
	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID}, nil)
	mockTransactions.EXPECT().SetCategoryNull(mock.Anything, userID, categoryID).
		Run(func(ctx context.Context, u uuid.UUID, c uuid.UUID) {
			calls = append(calls, "SetCategoryNull")
		}).Return(nil)
	mockCategories.EXPECT().SetDeleted(mock.Anything, categoryID).
		Run(func(ctx context.Context, id uuid.UUID) {
			calls = append(calls, "SetDeleted")
		}).Return(nil)

	action := &DeleteCategory{UserID: userID, CategoryID: categoryID}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, []string{"SetCategoryNull", "SetDeleted"}, calls)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	writer, mockCategories, mockTransactions := newDeleteCategoryWriter(t)

	mockCategories.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil)

	action := &DeleteCategory{UserID: uuid.Must(uuid.NewV4()), CategoryID: uuid.Must(uuid.NewV4())}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
	mockTransactions.AssertNotCalled(t, "SetCategoryNull")
}

func TestDeleteCategory_AlreadyDeleted(t *testing.T) {
	writer, mockCategories, mockTransactions := newDeleteCategoryWriter(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID, Deleted: true}, nil)

	action := &DeleteCategory{UserID: userID, CategoryID: categoryID}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
	mockTransactions.AssertNotCalled(t, "SetCategoryNull")
}

func TestDeleteCategory_ForeignOwner(t *testing.T) {
	writer, mockCategories, mockTransactions := newDeleteCategoryWriter(t)

	categoryID := uuid.Must(uuid.NewV4())

	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: uuid.Must(uuid.NewV4())}, nil)

	action := &DeleteCategory{UserID: uuid.Must(uuid.NewV4()), CategoryID: categoryID}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
	mockTransactions.AssertNotCalled(t, "SetCategoryNull")
}
