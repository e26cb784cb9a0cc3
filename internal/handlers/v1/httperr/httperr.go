// Package httperr maps service-layer errors onto Huma status errors so every
// endpoint reports the taxonomy the same way.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// FromService converts a service or action error into a Huma error.
// NotFound sentinels map to 404, guard denials to 409, validation failures
// to 422, anything else to a 500 carrying the fallback message.
func FromService(err error, fallback string) error {
	if errors.Is(err, service.ErrAccountNotFound) ||
		errors.Is(err, service.ErrTransactionNotFound) ||
		errors.Is(err, service.ErrCategoryNotFound) {
		return huma.NewError(http.StatusNotFound, err.Error())
	}

	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		return huma.NewError(http.StatusConflict, conflict.Reason)
	}

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return huma.NewError(http.StatusUnprocessableEntity, validation.Reason)
	}

	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
