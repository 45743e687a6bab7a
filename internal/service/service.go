package service

import (
	"context"

	"product-api/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves one page of products, optionally filtered by category.
	// Non-positive page or limit values fall back to the defaults.
	List(ctx context.Context, category string, page, limit int) (*model.ProductPage, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create validates the input and stores a new product.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update replaces an existing product. A missing product is reported
	// before the input is validated.
	Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error)

	// Delete removes a product by ID.
	Delete(ctx context.Context, id string) error

	// Search finds products whose name contains the query, ignoring case.
	Search(ctx context.Context, query string) ([]model.Product, error)

	// Stats counts products per category.
	Stats(ctx context.Context) (model.CategoryStats, error)
}
