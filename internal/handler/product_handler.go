package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"product-api/internal/model"
	"product-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with category filtering and pagination.
// Missing or non-numeric page and limit values fall back to the defaults.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r)
	query := r.URL.Query()

	category := query.Get("category")
	page := queryInt(query.Get("page"))
	limit := queryInt(query.Get("limit"))

	result, err := h.service.List(r.Context(), category, page, limit)
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Search handles GET /api/products/search?q= requests.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r)

	products, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Stats handles GET /api/products/stats requests.
func (h *ProductHandler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r)

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r)
	productID := chi.URLParam(r, "id")

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r)

	input, err := decodeProductInput(r)
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r)
	productID := chi.URLParam(r, "id")

	input, err := decodeProductInput(r)
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	product, err := h.service.Update(r.Context(), productID, input)
	if err != nil {
		writeDomainError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(h.logger, r)
	productID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), productID); err != nil {
		writeDomainError(w, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeProductInput reads a product payload from the request body.
// An empty body decodes to an empty payload so that validation reports the
// missing fields.
func decodeProductInput(r *http.Request) (model.ProductInput, error) {
	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return model.ProductInput{}, nil
		}
		return model.ProductInput{}, model.ErrInvalidBody
	}
	return input, nil
}

// queryInt parses a query value, returning 0 when it is absent or not a number.
func queryInt(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
