package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/bank-ledger/internal/logging"
)

type runner interface {
	Running() bool
}

type Handler struct {
	Operator runner
}

func NewHandler(op runner) Handler {
	return Handler{Operator: op}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if !h.Operator.Running() {
		logData.AddData("operator", "stopped")
		w.WriteHeader(http.StatusServiceUnavailable)
		return errors.New("status: operator stopped")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
