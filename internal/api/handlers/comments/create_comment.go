package comments

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Cadenza/internal/api/middleware"
	"Cadenza/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// createCommentRequest is the JSON body for POST /content/{id}/comments.
// Author identity comes from the verified token, never the body.
type createCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parentCommentId,omitempty"`
}

// HandleCreate handles POST /content/{id}/comments
// Requires authentication (enforced by middleware).
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "content id must be a valid integer")
		return
	}

	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var body createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid JSON body")
		return
	}

	resp, err := h.service.CreateComment(r.Context(), comments.CreateCommentRequest{
		ArticleID:   articleID,
		ParentID:    body.ParentCommentID,
		Content:     body.Content,
		AuthorID:    identity.UserID,
		AuthorName:  identity.Name,
		AuthorEmail: identity.Email,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode create comment response: %v", err)
	}
}
