// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitaker/statekit/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	articleHandler *handlers.ArticleHandler,
	actionHandler *handlers.ActionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Cached reads.
		r.Get("/articles", articleHandler.ListArticles)

		// Refresh dispatches.
		r.Post("/refresh/articles", articleHandler.RefreshArticles)
		r.Post("/refresh/articles/{id}", articleHandler.RefreshArticle)
		r.Post("/refresh/authors/{id}", articleHandler.RefreshAuthor)

		// Action lifecycle inspection.
		r.Get("/actions/{actionID}", actionHandler.GetAction)
		r.Delete("/actions/{actionID}", actionHandler.ClearAction)
	})

	return r
}
