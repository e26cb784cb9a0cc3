package status

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
)

// Handler serves the liveness probe outside the versioned API surface.
type Handler struct {
	Operator *operator.OperatorDelegator
}

func NewHandler(op *operator.OperatorDelegator) Handler {
	return Handler{Operator: op}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	depth := h.Operator.QueueDepth()
	logData.AddData("queueDepth", depth)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := fmt.Fprintf(w, `{"status":"ok","queueDepth":%d}`, depth)
	return err
}
