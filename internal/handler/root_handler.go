package handler

import (
	"net/http"

	"product-api/internal/model"

	"github.com/rs/zerolog"
)

// RootHandler serves the non-product endpoints.
type RootHandler struct {
	logger zerolog.Logger
}

// NewRootHandler creates a new root handler.
func NewRootHandler(logger zerolog.Logger) *RootHandler {
	return &RootHandler{
		logger: logger.With().Str("handler", "root").Logger(),
	}
}

// Index handles GET / with a plain-text liveness message.
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello world."))
}

// Health handles GET /health.
func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// NotFound answers requests no route matched, including unsupported methods
// on known paths.
func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r).With().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Logger()
	writeDomainError(w, model.ErrRouteNotFound, logger)
}
