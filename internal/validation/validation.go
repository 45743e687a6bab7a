// Package validation checks create and update payloads before they reach the
// repository.
package validation

import (
	"errors"
	"fmt"

	"product-api/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ProductValidator checks that every required product field is present.
type ProductValidator interface {
	// Validate returns model.ErrMissingFields when a required field is absent.
	// A zero price and a false inStock count as present.
	Validate(input model.ProductInput) error
}

type productValidator struct {
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewProductValidator creates a validator backed by go-playground/validator.
func NewProductValidator(logger zerolog.Logger) ProductValidator {
	return &productValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With().Str("component", "product-validator").Logger(),
	}
}

// Validate checks the input struct tags. Pointer fields only need to be
// non-nil; string fields must be non-empty.
func (v *productValidator) Validate(input model.ProductInput) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fieldErr.Field())
		}
		v.logger.Debug().Strs("fields", fields).Msg("product payload is missing fields")
		return model.ErrMissingFields
	}

	return fmt.Errorf("failed to validate product: %w", err)
}
