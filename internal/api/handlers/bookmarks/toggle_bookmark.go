// Package bookmarks provides the HTTP handler for bookmark toggling.
package bookmarks

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Cadenza/internal/api/middleware"
	"Cadenza/internal/core/bookmarks"

	"github.com/go-chi/chi/v5"
)

// ToggleBookmarkHandler handles bookmark toggles
type ToggleBookmarkHandler struct {
	service bookmarks.Service
}

// NewToggleBookmarkHandler creates a new bookmark toggle handler
func NewToggleBookmarkHandler(service bookmarks.Service) *ToggleBookmarkHandler {
	return &ToggleBookmarkHandler{service: service}
}

// HandleToggle handles POST /bookmarks/{articleID}
// Flips the caller's bookmark on the article and returns the new state.
func (h *ToggleBookmarkHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	articleID, err := strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "article id must be a valid integer")
		return
	}

	resp, err := h.service.Toggle(r.Context(), identity.UserID, articleID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode bookmark response: %v", err)
	}
}
