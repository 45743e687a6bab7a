// Package seed provides the products the in-memory repository starts with.
// The built-in set is used unless a seed file is configured, in which case
// the file is read from local disk or S3.
package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"product-api/internal/model"
	"product-api/internal/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Record is one product entry in a seed file. ID is optional.
type Record struct {
	ID string `json:"id"`
	model.ProductInput
}

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a seed file and returns its records.
	Load(ctx context.Context, path string) ([]Record, error)
}

// Default returns the built-in seed products.
func Default() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       1200,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       800,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       50,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}

// Products returns the seed products. With an empty path the built-in set is
// returned; otherwise the file is loaded and every record is validated.
func Products(ctx context.Context, path string, loader Loader, validator validation.ProductValidator, logger zerolog.Logger) ([]model.Product, error) {
	logger = logger.With().Str("component", "seed").Logger()

	if path == "" {
		products := Default()
		logger.Info().Int("products", len(products)).Msg("using built-in seed")
		return products, nil
	}

	records, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", path, err)
	}

	products, err := toProducts(records, validator)
	if err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}

	logger.Info().
		Str("file", path).
		Int("products", len(products)).
		Msg("seed file loaded")

	return products, nil
}

// toProducts validates records and assigns IDs to those without one.
func toProducts(records []Record, validator validation.ProductValidator) ([]model.Product, error) {
	products := make([]model.Product, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, rec := range records {
		if err := validator.Validate(rec.ProductInput); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		id := rec.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}

		products = append(products, rec.ToProduct(id))
	}

	return products, nil
}

// decodeRecords reads a JSON array of records, gunzipping first when name
// ends in .gz.
func decodeRecords(r io.Reader, name string) ([]Record, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return records, nil
}
