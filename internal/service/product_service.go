package service

import (
	"context"
	"errors"
	"fmt"

	"product-api/internal/model"
	"product-api/internal/repository"
	"product-api/internal/validation"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	validator   validation.ProductValidator
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, validator validation.ProductValidator, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		validator:   validator,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves one page of products, optionally filtered by category.
func (s *productService) List(ctx context.Context, category string, page, limit int) (*model.ProductPage, error) {
	products, err := s.productRepo.List(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := repository.Paginate(products, page, limit)

	s.logger.Debug().
		Str("category", category).
		Int("total", result.Total).
		Int("page", result.Page).
		Int("limit", result.Limit).
		Int("count", len(result.Products)).
		Msg("listed products")

	return &result, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// Create validates the input and stores a new product.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// Update replaces an existing product. The existence check runs first so an
// unknown ID is reported as not found whatever the payload holds.
func (s *productService) Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.ErrProductNotFound
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Debug().Str("product_id", id).Msg("product not found for delete")
			return model.ErrProductNotFound
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

// Search finds products whose name contains the query.
func (s *productService) Search(ctx context.Context, query string) ([]model.Product, error) {
	products, err := s.productRepo.SearchByName(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	s.logger.Debug().
		Str("query", query).
		Int("count", len(products)).
		Msg("searched products")

	return products, nil
}

// Stats counts products per category.
func (s *productService) Stats(ctx context.Context) (model.CategoryStats, error) {
	stats, err := s.productRepo.CategoryStats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute category stats")
		return nil, fmt.Errorf("failed to compute category stats: %w", err)
	}

	return stats, nil
}
