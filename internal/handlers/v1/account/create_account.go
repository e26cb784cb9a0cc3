package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name               string `json:"name" required:"true" maxLength:"100" doc:"Account name"`
	Type               string `json:"type" required:"true" enum:"cash,bank,card,other" doc:"Account type"`
	OpeningBalance     string `json:"openingBalance,omitempty" doc:"Decimal opening balance, defaults to 0"`
	OpeningBalanceDate string `json:"openingBalanceDate,omitempty" format:"date" doc:"Opening balance effective date, defaults to today"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	Body   CreateAccountBody
}

// CreateAccountResponseBody is the response body for creating an account.
type CreateAccountResponseBody struct {
	ID string `json:"id" doc:"UUID of the created account"`
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponseBody
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create account",
		Description: "Creates a new account for the user.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

// parseCreateAccountInput parses and validates the API input into an action.
func parseCreateAccountInput(input *CreateAccountInput) (*actions.CreateAccount, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}

	accountType, err := service.ParseAccountType(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	openingBalance := decimal.Zero
	if input.Body.OpeningBalance != "" {
		openingBalance, err = decimal.NewFromString(input.Body.OpeningBalance)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid openingBalance", err)
		}
	}

	openingBalanceDate := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Body.OpeningBalanceDate != "" {
		openingBalanceDate, err = time.Parse(time.DateOnly, input.Body.OpeningBalanceDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid openingBalanceDate", err)
		}
	}

	return &actions.CreateAccount{
		UserID:             userID,
		Name:               input.Body.Name,
		Type:               accountType,
		OpeningBalance:     openingBalance,
		OpeningBalanceDate: &openingBalanceDate,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	action, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to create account")
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponseBody{ID: action.CreatedID.String()},
	}, nil
}
