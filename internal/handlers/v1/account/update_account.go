package account

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// UpdateAccountBody is the request body for a partial account update.
// Absent fields are left untouched; an empty openingBalanceDate clears it.
type UpdateAccountBody struct {
	Name               *string `json:"name,omitempty" maxLength:"100" doc:"Account name"`
	Type               *string `json:"type,omitempty" enum:"cash,bank,card,other" doc:"Account type"`
	OpeningBalance     *string `json:"openingBalance,omitempty" doc:"Decimal opening balance"`
	OpeningBalanceDate *string `json:"openingBalanceDate,omitempty" doc:"Opening balance effective date (YYYY-MM-DD), empty string clears it"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	UserID    string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	AccountID string `path:"accountID" doc:"Account UUID"`
	Body      UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Status int
}

// UpdateAccountHandler handles PATCH /v1/account/{accountID}.
type UpdateAccountHandler struct {
	Operator actionProcessor
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op actionProcessor) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{accountID}",
		Summary:     "Update account",
		Description: "Partially updates one of the user's accounts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

// parseUpdateAccountInput parses and validates the API input into an action.
func parseUpdateAccountInput(input *UpdateAccountInput) (*actions.UpdateAccount, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	action := &actions.UpdateAccount{
		UserID:    userID,
		AccountID: accountID,
	}

	if input.Body.Name != nil {
		action.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Type != nil {
		accountType, err := service.ParseAccountType(*input.Body.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		action.Type = omit.From(accountType)
	}
	if input.Body.OpeningBalance != nil {
		openingBalance, err := decimal.NewFromString(*input.Body.OpeningBalance)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid openingBalance", err)
		}
		action.OpeningBalance = omit.From(openingBalance)
	}
	if input.Body.OpeningBalanceDate != nil {
		if *input.Body.OpeningBalanceDate == "" {
			action.OpeningBalanceDate = omit.From[*time.Time](nil)
		} else {
			date, err := time.Parse(time.DateOnly, *input.Body.OpeningBalanceDate)
			if err != nil {
				return nil, huma.NewError(http.StatusBadRequest, "invalid openingBalanceDate", err)
			}
			action.OpeningBalanceDate = omit.From(&date)
		}
	}

	return action, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	action, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to update account")
	}

	return &UpdateAccountOutput{Status: http.StatusNoContent}, nil
}
