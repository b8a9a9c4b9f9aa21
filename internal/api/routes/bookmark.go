package routes

import (
	"Cadenza/internal/api/handlers/bookmarks"
	"Cadenza/internal/api/middleware"
	bookmarksCore "Cadenza/internal/core/bookmarks"

	"github.com/go-chi/chi/v5"
)

// RegisterBookmarkRoutes registers the bookmark toggle endpoint.
// Toggling always requires authentication.
func RegisterBookmarkRoutes(r chi.Router, service bookmarksCore.Service, authMiddleware *middleware.AuthMiddleware) {
	handler := bookmarks.NewToggleBookmarkHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/bookmarks/{articleID}", handler.HandleToggle)
}
