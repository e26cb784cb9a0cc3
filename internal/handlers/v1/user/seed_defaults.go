package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
)

// SeedDefaultsInput is the Huma input for provisioning user defaults.
type SeedDefaultsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Authenticated user UUID"`
}

// SeedDefaultsOutput is the Huma output for provisioning user defaults.
type SeedDefaultsOutput struct {
	Status int
}

// seeder is the interface for provisioning a user's default records.
type seeder interface {
	SeedUserDefaults(ctx context.Context, userID uuid.UUID) error
}

// SeedDefaultsHandler handles POST /v1/user/defaults.
type SeedDefaultsHandler struct {
	SeedService seeder
}

// NewSeedDefaultsHandler creates a new SeedDefaultsHandler.
func NewSeedDefaultsHandler(svc seeder) *SeedDefaultsHandler {
	return &SeedDefaultsHandler{SeedService: svc}
}

// Register registers the seed defaults endpoint with the Huma API.
func (h *SeedDefaultsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "seed-user-defaults",
		Method:      http.MethodPost,
		Path:        "/v1/user/defaults",
		Summary:     "Provision user defaults",
		Description: "Creates the default Cash account and starter categories for a new user. Intended for first login.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *SeedDefaultsHandler) handle(ctx context.Context, input *SeedDefaultsInput) (*SeedDefaultsOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user", err)
	}

	if err := h.SeedService.SeedUserDefaults(ctx, userID); err != nil {
		return nil, httperr.FromService(err, "failed to provision defaults")
	}

	return &SeedDefaultsOutput{Status: http.StatusNoContent}, nil
}
