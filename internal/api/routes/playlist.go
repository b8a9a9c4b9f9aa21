package routes

import (
	"Cadenza/internal/api/handlers/playlists"
	"Cadenza/internal/api/middleware"
	playlistsCore "Cadenza/internal/core/playlists"

	"github.com/go-chi/chi/v5"
)

// RegisterPlaylistRoutes registers playlist endpoints on the router.
// All mutations require authentication.
func RegisterPlaylistRoutes(r chi.Router, service playlistsCore.Service, authMiddleware *middleware.AuthMiddleware) {
	playlistHandler := playlists.NewPlaylistHandler(service)
	trackHandler := playlists.NewTrackHandler(service)

	r.Get("/playlists/{id}", playlistHandler.HandleGet)

	r.With(authMiddleware.RequireAuth).Post("/playlists", playlistHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Post("/playlists/{id}/tracks", trackHandler.HandleAddTrack)
	r.With(authMiddleware.RequireAuth).Delete("/playlists/{id}/tracks", trackHandler.HandleRemoveTrack)
	r.With(authMiddleware.RequireAuth).Put("/playlists/{id}/tracks", trackHandler.HandleReorder)
}
