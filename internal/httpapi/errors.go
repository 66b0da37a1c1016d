package httpapi

import (
	"encoding/json"
	"net/http"

	"ruralai/internal/llm"
	"ruralai/pkg/types"
)

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeJSON writes v with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// resultStatus maps a failed generation to an HTTP status for JSON clients.
func resultStatus(res llm.Result) int {
	switch res.Outcome {
	case llm.OutcomeOK:
		return http.StatusOK
	case llm.OutcomeModelUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
