package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-api/internal/config"
	"product-api/internal/handler"
	"product-api/internal/repository"
	"product-api/internal/router"
	"product-api/internal/seed"
	"product-api/internal/service"
	"product-api/internal/validation"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger, os.Stdout)
	logger.Info().Msg("starting product API server")

	validator := validation.NewProductValidator(logger)

	// Load the seed products and build the store
	products, err := seed.Products(ctx, cfg.Seed.File, newSeedLoader(ctx, cfg.Seed, logger), validator, logger)
	if err != nil {
		return fmt.Errorf("failed to load seed products: %w", err)
	}
	productRepo := repository.NewProductRepository(products, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, validator, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	rootHandler := handler.NewRootHandler(logger)

	// Initialize router
	mux := router.New(productHandler, rootHandler, router.Options{
		APIKey:        cfg.Auth.APIKey,
		RequireAPIKey: cfg.Auth.Required,
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Bool("api_key_required", cfg.Auth.Required).
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info().Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newSeedLoader returns the local file loader, or an S3 loader with local
// fallback when S3 seeding is enabled.
func newSeedLoader(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
}
