package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is a single mutation performed inside one database transaction.
// The operator commits on nil and rolls back on error.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
