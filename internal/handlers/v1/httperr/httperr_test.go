package httperr

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/service"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestFromService_NotFoundSentinels(t *testing.T) {
	assert.Equal(t, 404, statusOf(t, FromService(service.ErrAccountNotFound, "fallback")))
	assert.Equal(t, 404, statusOf(t, FromService(service.ErrTransactionNotFound, "fallback")))
	assert.Equal(t, 404, statusOf(t, FromService(service.ErrCategoryNotFound, "fallback")))
}

func TestFromService_Conflict(t *testing.T) {
	err := FromService(&service.ConflictError{Reason: "account has 2 transaction(s)"}, "fallback")

	assert.Equal(t, 409, statusOf(t, err))
	assert.Contains(t, err.Error(), "account has 2 transaction(s)")
}

func TestFromService_Validation(t *testing.T) {
	err := FromService(&service.ValidationError{Reason: "amount must be greater than zero"}, "fallback")

	assert.Equal(t, 422, statusOf(t, err))
}

func TestFromService_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("loading account"), service.ErrAccountNotFound)

	assert.Equal(t, 404, statusOf(t, FromService(wrapped, "fallback")))
}

func TestFromService_UnknownError(t *testing.T) {
	err := FromService(errors.New("connection refused"), "failed to list accounts")

	assert.Equal(t, 500, statusOf(t, err))
	assert.Contains(t, err.Error(), "failed to list accounts")
}
