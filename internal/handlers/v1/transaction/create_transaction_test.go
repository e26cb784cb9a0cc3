package transaction

import (
	"context"
	"encoding/json"
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

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newCreateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

func validCreateBody(accountID uuid.UUID) CreateTransactionBody {
	return CreateTransactionBody{
		AccountID:     accountID.String(),
		Amount:        "12.50",
		Description:   "Coffee",
		Type:          "debit",
		PaymentMethod: "card",
	}
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	action, err := parseCreateTransactionInput(&CreateTransactionInput{
		UserID: userID.String(),
		Body: CreateTransactionBody{
			AccountID:       accountID.String(),
			CategoryID:      categoryID.String(),
			Amount:          "123.45",
			Description:     "Weekly groceries",
			TransactionDate: "2025-01-15",
			Type:            "debit",
			PaymentMethod:   "upi",
			Notes:           "store run",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, accountID, action.AccountID)
	assert.Equal(t, &categoryID, action.CategoryID)
	assert.True(t, action.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, "Weekly groceries", action.Description)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), action.TransactionDate)
	assert.Equal(t, service.TransactionTypeDebit, action.Type)
	assert.Equal(t, service.PaymentMethodUPI, action.PaymentMethod)
	assert.Equal(t, "store run", action.Notes)
}

func TestParseCreateTransactionInput_DefaultsDateToToday(t *testing.T) {
	action, err := parseCreateTransactionInput(&CreateTransactionInput{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Body:   validCreateBody(uuid.Must(uuid.NewV4())),
	})

	assert.NoError(t, err)
	assert.Nil(t, action.CategoryID)
	assert.True(t, action.TransactionDate.Equal(time.Now().UTC().Truncate(24*time.Hour)))
}

func TestParseCreateTransactionInput_InvalidAmount(t *testing.T) {
	body := validCreateBody(uuid.Must(uuid.NewV4()))
	body.Amount = "not-a-decimal"

	_, err := parseCreateTransactionInput(&CreateTransactionInput{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Body:   body,
	})
	assert.Error(t, err)
}

func TestParseCreateTransactionInput_InvalidCategoryID(t *testing.T) {
	body := validCreateBody(uuid.Must(uuid.NewV4()))
	body.CategoryID = "not-a-uuid"

	_, err := parseCreateTransactionInput(&CreateTransactionInput{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Body:   body,
	})
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		create, ok := action.(*actions.CreateTransaction)
		return ok && create.UserID == userID &&
			create.AccountID == accountID &&
			create.Amount.Equal(decimal.RequireFromString("12.50"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateTransaction).CreatedID = createdID
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", userHeader(userID), validCreateBody(accountID))

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, createdID.String(), body.ID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_UnknownType(t *testing.T) {
	mockOp := new(mockProcessor)

	// Huma's enum schema validation rejects this before the handler runs.
	body := validCreateBody(uuid.Must(uuid.NewV4()))
	body.Type = "transfer"

	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_MissingUserHeader(t *testing.T) {
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", validCreateBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_ValidationErrorFromAction(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(&service.ValidationError{Reason: "amount must be greater than zero"})

	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), validCreateBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(service.ErrAccountNotFound)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), validCreateBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}
