package routes

import (
	"Cadenza/internal/api/handlers/articles"
	"Cadenza/internal/api/middleware"
	articlesCore "Cadenza/internal/core/articles"

	"github.com/go-chi/chi/v5"
)

// RegisterArticleRoutes registers article endpoints on the router.
// Reading is public; create/update/publish require authentication.
func RegisterArticleRoutes(r chi.Router, service articlesCore.Service, authMiddleware *middleware.AuthMiddleware) {
	handler := articles.NewArticleHandler(service)

	r.Get("/articles", handler.HandleList)
	r.Get("/articles/{slug}", handler.HandleGetBySlug)

	r.With(authMiddleware.RequireAuth).Post("/articles", handler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/articles/{id}", handler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Post("/articles/{id}/publish", handler.HandlePublish)
}
