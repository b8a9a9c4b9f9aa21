package routes

import (
	"Cadenza/internal/api/handlers/ranking"
	rankingCore "Cadenza/internal/core/ranking"

	"github.com/go-chi/chi/v5"
)

// RegisterRankingRoutes registers the public track ranking endpoint
func RegisterRankingRoutes(r chi.Router, service rankingCore.Service) {
	handler := ranking.NewGetRankingHandler(service)

	r.Get("/ranking/tracks", handler.HandleGetRanking)
}
