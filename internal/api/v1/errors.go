package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"bodygoals/internal/domain"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Fields: fields}})
}

// writeDomainError maps expected domain states to their API codes. A missing
// active goal and a metric-less goal are normal states shown as calls to
// action, never generic failures.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoActiveGoal):
		writeError(w, http.StatusNotFound, "NO_ACTIVE_GOAL", "no active goal for user", nil)
	case errors.Is(err, domain.ErrNoEnabledMetrics):
		writeError(w, http.StatusBadRequest, "NO_ENABLED_METRICS", "goal needs at least one metric with start and target", nil)
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
