package router

import (
	"net/http"

	"product-api/internal/handler"
	"product-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Options controls optional router behaviour.
type Options struct {
	// APIKey is the key expected in the X-API-Key header.
	APIKey string

	// RequireAPIKey turns on API key enforcement. It is off by default.
	RequireAPIKey bool
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	rootHandler *handler.RootHandler,
	opts Options,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware runs in order: RequestID -> Recovery -> Logging -> CORS -> APIKeyAuth
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	if opts.RequireAPIKey {
		r.Use(middleware.APIKeyAuth(opts.APIKey, logger))
	}

	r.NotFound(rootHandler.NotFound)
	r.MethodNotAllowed(rootHandler.NotFound)

	r.Get("/", rootHandler.Index)
	r.Get("/health", rootHandler.Health)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)

		// Static segments must be registered ahead of {id}.
		r.Get("/search", productHandler.Search)
		r.Get("/stats", productHandler.Stats)

		r.Get("/{id}", productHandler.GetByID)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})

	return r
}
