package repository

import (
	"context"
	"strings"
	"sync"

	"product-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface in memory.
// Products are kept in a slice so listings follow insertion order.
type productRepository struct {
	mu       sync.RWMutex
	products []model.Product
	logger   zerolog.Logger
}

// compile-time assertion that productRepository implements ProductRepository
var _ ProductRepository = (*productRepository)(nil)

// NewProductRepository creates an in-memory product repository holding a copy
// of the seed products.
func NewProductRepository(seed []model.Product, logger zerolog.Logger) ProductRepository {
	products := make([]model.Product, len(seed))
	copy(products, seed)

	return &productRepository{
		products: products,
		logger:   logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves all products, optionally filtered by category.
// Category matching ignores case on both sides.
func (r *productRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	p := r.products[i]
	return &p, nil
}

// Create stores a new product under a fresh UUID.
func (r *productRepository) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := input.ToProduct(uuid.NewString())

	r.mu.Lock()
	r.products = append(r.products, p)
	r.mu.Unlock()

	r.logger.Debug().Str("product_id", p.ID).Msg("product created")

	return &p, nil
}

// Update replaces the product with the given ID, keeping the ID.
func (r *productRepository) Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		r.logger.Debug().Str("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	p := input.ToProduct(id)
	r.products[i] = p

	return &p, nil
}

// Delete removes the product with the given ID.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		r.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	r.products = append(r.products[:i], r.products[i+1:]...)

	return nil
}

// SearchByName returns products whose name contains query, ignoring case.
// An empty query matches every product.
func (r *productRepository) SearchByName(ctx context.Context, query string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			products = append(products, p)
		}
	}

	return products, nil
}

// CategoryStats counts products per category in a single pass.
func (r *productRepository) CategoryStats(ctx context.Context) (model.CategoryStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make(model.CategoryStats)
	for _, p := range r.products {
		stats[p.Category]++
	}

	return stats, nil
}

// indexOf returns the position of the product with the given ID, or -1.
// Callers must hold the lock.
func (r *productRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
