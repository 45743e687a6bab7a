package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-api/internal/model"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

const internalErrorMessage = "Internal Server Error"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError is the single place that turns an error into a status code
// and an error body. Unclassified errors become a 500 and their cause is logged.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForKind(domainErr.Kind), domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg("unhandled error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
}

// statusForKind maps an error classification to an HTTP status code.
func statusForKind(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation, model.KindBadRequest:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// requestLogger returns a logger carrying the request ID set by the router.
func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		return logger.With().Str("request_id", reqID).Logger()
	}
	return logger
}
