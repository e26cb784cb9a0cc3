package account

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

func newUpdateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateAccountHandler(op).Register(api)
	return api
}

func stringPtr(s string) *string {
	return &s
}

// -- parseUpdateAccountInput unit tests --

func TestParseUpdateAccountInput_AllFields(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	action, err := parseUpdateAccountInput(&UpdateAccountInput{
		UserID:    userID.String(),
		AccountID: accountID.String(),
		Body: UpdateAccountBody{
			Name:               stringPtr("Renamed"),
			Type:               stringPtr("card"),
			OpeningBalance:     stringPtr("55.25"),
			OpeningBalanceDate: stringPtr("2025-02-01"),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, accountID, action.AccountID)
	assert.Equal(t, "Renamed", action.Name.GetOrZero())
	assert.Equal(t, service.AccountTypeCard, action.Type.GetOrZero())
	assert.True(t, action.OpeningBalance.GetOrZero().Equal(decimal.RequireFromString("55.25")))
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), *action.OpeningBalanceDate.GetOrZero())
}

func TestParseUpdateAccountInput_AbsentFieldsUnset(t *testing.T) {
	action, err := parseUpdateAccountInput(&UpdateAccountInput{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		AccountID: uuid.Must(uuid.NewV4()).String(),
		Body:      UpdateAccountBody{},
	})

	assert.NoError(t, err)
	assert.False(t, action.Name.IsValue())
	assert.False(t, action.Type.IsValue())
	assert.False(t, action.OpeningBalance.IsValue())
	assert.False(t, action.OpeningBalanceDate.IsValue())
}

func TestParseUpdateAccountInput_EmptyDateClears(t *testing.T) {
	action, err := parseUpdateAccountInput(&UpdateAccountInput{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		AccountID: uuid.Must(uuid.NewV4()).String(),
		Body: UpdateAccountBody{
			OpeningBalanceDate: stringPtr(""),
		},
	})

	assert.NoError(t, err)
	assert.True(t, action.OpeningBalanceDate.IsValue())
	assert.Nil(t, action.OpeningBalanceDate.GetOrZero())
}

func TestParseUpdateAccountInput_InvalidAccountID(t *testing.T) {
	_, err := parseUpdateAccountInput(&UpdateAccountInput{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		AccountID: "not-a-uuid",
		Body:      UpdateAccountBody{},
	})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_UpdateAccount_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		update, ok := action.(*actions.UpdateAccount)
		return ok && update.AccountID == accountID && update.Name.GetOrZero() == "Renamed"
	})).Return(nil)

	resp := newUpdateTestAPI(t, mockOp).Patch("/v1/account/"+accountID.String(), userHeader(userID), UpdateAccountBody{
		Name: stringPtr("Renamed"),
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_UpdateAccount_NotFound(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(service.ErrAccountNotFound)

	resp := newUpdateTestAPI(t, mockOp).Patch(
		"/v1/account/"+uuid.Must(uuid.NewV4()).String(),
		userHeader(uuid.Must(uuid.NewV4())),
		UpdateAccountBody{Name: stringPtr("Renamed")},
	)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}
