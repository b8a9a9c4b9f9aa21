package playlists

import (
	"encoding/json"
	"net/http"

	"Cadenza/internal/core/playlists"
)

// TrackHandler handles playlist membership and ordering
type TrackHandler struct {
	service playlists.Service
}

// NewTrackHandler creates a new playlist track handler
func NewTrackHandler(service playlists.Service) *TrackHandler {
	return &TrackHandler{service: service}
}

type trackRequest struct {
	TrackID int64 `json:"trackId"`
}

type reorderRequest struct {
	Tracks []int64 `json:"tracks"`
}

// HandleAddTrack handles POST /playlists/{id}/tracks
// Adding a track already in the playlist succeeds with alreadyExists
// set; it never fails and never moves positions.
func (h *TrackHandler) HandleAddTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := playlistID(w, r)
	if !ok {
		return
	}

	var body trackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid JSON body")
		return
	}
	if body.TrackID <= 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "trackId is required")
		return
	}

	resp, err := h.service.AddTrack(r.Context(), id, body.TrackID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleRemoveTrack handles DELETE /playlists/{id}/tracks
// Remaining positions are renumbered so the sequence stays dense.
func (h *TrackHandler) HandleRemoveTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := playlistID(w, r)
	if !ok {
		return
	}

	var body trackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid JSON body")
		return
	}
	if body.TrackID <= 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "trackId is required")
		return
	}

	if err := h.service.RemoveTrack(r.Context(), id, body.TrackID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "track removed"})
}

// HandleReorder handles PUT /playlists/{id}/tracks
// The body must list every track in the playlist exactly once; positions
// are overwritten to match the array order.
func (h *TrackHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	id, ok := playlistID(w, r)
	if !ok {
		return
	}

	var body reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid JSON body")
		return
	}

	if err := h.service.Reorder(r.Context(), id, body.Tracks); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "playlist reordered"})
}
