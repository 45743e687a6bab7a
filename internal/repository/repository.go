package repository

import (
	"context"

	"product-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves all products in insertion order, optionally restricted to
	// a category. An empty category matches every product.
	List(ctx context.Context, category string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns model.ErrProductNotFound if no product has that ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create stores a new product under a freshly generated ID.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update replaces every field of the product with the given ID.
	// Returns model.ErrProductNotFound if no product has that ID.
	Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error)

	// Delete removes the product with the given ID.
	// Returns model.ErrProductNotFound if no product has that ID.
	Delete(ctx context.Context, id string) error

	// SearchByName returns products whose name contains query, ignoring case.
	SearchByName(ctx context.Context, query string) ([]model.Product, error)

	// CategoryStats counts products per stored category value.
	CategoryStats(ctx context.Context) (model.CategoryStats, error)
}
