// Package comments provides HTTP handlers for the comment API.
package comments

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Cadenza/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// GetCommentsHandler handles comment retrieval for articles
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new handler for fetching comments
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleGetComments handles GET /content/{id}/comments
// Returns the flat level-ordered list by default; ?format=tree returns
// the same comments nested into reply trees.
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "content id must be a valid integer")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "flat" && format != "tree" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "format must be one of: flat, tree")
		return
	}

	var body interface{}
	if format == "tree" {
		body, err = h.service.ListTreeForArticle(r.Context(), articleID)
	} else {
		body, err = h.service.ListForArticle(r.Context(), articleID)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers already sent, just log
		log.Printf("Failed to encode comments response: %v", err)
	}
}
