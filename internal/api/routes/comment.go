package routes

import (
	"Cadenza/internal/api/handlers/comments"
	"Cadenza/internal/api/middleware"
	commentsCore "Cadenza/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints on the router.
// Reading is public; writing requires authentication.
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, authMiddleware *middleware.AuthMiddleware) {
	getHandler := comments.NewGetCommentsHandler(service)
	createHandler := comments.NewCreateCommentHandler(service)

	r.Get("/content/{id}/comments", getHandler.HandleGetComments)
	r.With(authMiddleware.RequireAuth).Post("/content/{id}/comments", createHandler.HandleCreate)
}
