package handler

import (
	"encoding/json"
	"net/http"

	apperrors "paper-analyzer/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestIDHeader carries the per-request identifier in both directions
const RequestIDHeader = "X-Request-ID"

// GetRequestIDFromContext extracts the request ID set by RequestLogger
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// requestID returns the request ID for log fields, or "" outside RequestLogger
func requestID(r *http.Request) string {
	id, _ := GetRequestIDFromContext(r)
	return id
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps an error to its HTTP status
func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.GetStatusCode(err), err.Error())
}
