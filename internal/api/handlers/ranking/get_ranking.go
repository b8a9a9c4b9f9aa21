// Package ranking provides the HTTP handler for the track ranking API.
package ranking

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Cadenza/internal/core/ranking"
)

// GetRankingHandler handles ranked track queries
type GetRankingHandler struct {
	service ranking.Service
}

// NewGetRankingHandler creates a new handler for ranking queries
func NewGetRankingHandler(service ranking.Service) *GetRankingHandler {
	return &GetRankingHandler{service: service}
}

// HandleGetRanking handles GET /ranking/tracks
// Query parameters: type (trending|popular|mostPlayed), limit, timeframe (days).
// Unknown types fall back to newest-first; out-of-range numbers are clamped.
func (h *GetRankingHandler) HandleGetRanking(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := ranking.GetTracksRequest{
		Type: query.Get("type"),
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "limit must be a valid integer")
			return
		}
		req.Limit = parsed
	}

	if timeframeStr := query.Get("timeframe"); timeframeStr != "" {
		parsed, err := strconv.Atoi(timeframeStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "timeframe must be a valid integer")
			return
		}
		req.Timeframe = parsed
	}

	resp, err := h.service.GetTracks(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode ranking response: %v", err)
	}
}
