package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name  string `json:"name" required:"true" maxLength:"100" doc:"Category name"`
	Icon  string `json:"icon,omitempty" maxLength:"50" doc:"Icon token"`
	Color string `json:"color,omitempty" maxLength:"20" doc:"Color hex"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
	Body   CreateCategoryBody
}

// CreateCategoryResponseBody is the response body for creating a category.
type CreateCategoryResponseBody struct {
	ID string `json:"id" doc:"UUID of the created category"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponseBody
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create category",
		Description: "Creates a new category for the user.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

// parseCreateCategoryInput parses and validates the API input into an action.
func parseCreateCategoryInput(input *CreateCategoryInput) (*actions.CreateCategory, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}

	return &actions.CreateCategory{
		UserID: userID,
		Name:   input.Body.Name,
		Icon:   input.Body.Icon,
		Color:  input.Body.Color,
	}, nil
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	action, err := parseCreateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponseBody{ID: action.CreatedID.String()},
	}, nil
}
