package web

// errors.go provides unified JSON response helpers for the API.

import (
	"encoding/json"
	"net/http"

	"sellerpulse/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("encode response",
			"path", r.URL.Path,
			"error", err,
		)
	}
}

// writeError writes a JSON error response and logs it with request context.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger := logging.FromContext(r.Context())
	if status >= 500 {
		logger.Error("request failed", "path", r.URL.Path, "method", r.Method, "status", status, "error", msg)
	} else {
		logger.Warn("request rejected", "path", r.URL.Path, "method", r.Method, "status", status, "error", msg)
	}
	writeJSON(w, r, status, ErrorResponse{Error: msg})
}
