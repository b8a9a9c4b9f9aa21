// Package playlists provides HTTP handlers for playlist management.
package playlists

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Cadenza/internal/api/middleware"
	"Cadenza/internal/core/playlists"

	"github.com/go-chi/chi/v5"
)

// PlaylistHandler handles playlist CRUD
type PlaylistHandler struct {
	service playlists.Service
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(service playlists.Service) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

type createPlaylistRequest struct {
	Name string `json:"name"`
}

// HandleCreate handles POST /playlists
// Requires authentication (enforced by middleware).
func (h *PlaylistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var body createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid JSON body")
		return
	}

	playlist, err := h.service.CreatePlaylist(r.Context(), identity.UserID, body.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

// HandleGet handles GET /playlists/{id}
func (h *PlaylistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := playlistID(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetPlaylist(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func playlistID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "playlist id must be a valid integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode playlist response: %v", err)
	}
}
