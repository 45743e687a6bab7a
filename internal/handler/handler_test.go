package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"product-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriteDomainError(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing fields",
			err:            model.ErrMissingFields,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Invalid body",
			err:            model.ErrInvalidBody,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:           "Product not found",
			err:            model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Product not found"}`,
		},
		{
			name:           "Wrapped not found",
			err:            fmt.Errorf("failed to get product: %w", model.ErrProductNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Product not found"}`,
		},
		{
			name:           "Unclassified error hides the cause",
			err:            errors.New("index out of range"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:           "Unknown kind",
			err:            model.NewDomainError(model.ErrorKind(99), "strange"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"strange"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			writeDomainError(w, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRootHandler(t *testing.T) {
	handler := NewRootHandler(zerolog.Nop())

	t.Run("Index", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello world.", w.Body.String())
	})

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.NotFound(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})
}
