// Package articles provides HTTP handlers for the article API.
package articles

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Cadenza/internal/api/middleware"
	"Cadenza/internal/core/articles"

	"github.com/go-chi/chi/v5"
)

// ArticleHandler handles article CRUD and publishing
type ArticleHandler struct {
	service articles.Service
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(service articles.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

type articleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleCreate handles POST /articles
// Requires authentication (enforced by middleware).
func (h *ArticleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var body articleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid JSON body")
		return
	}

	article, err := h.service.CreateArticle(r.Context(), articles.CreateArticleRequest{
		Title:      body.Title,
		Content:    body.Content,
		AuthorID:   identity.UserID,
		AuthorName: identity.Name,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

// HandleUpdate handles PUT /articles/{id}
// Only the author may update.
func (h *ArticleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	id, ok := articleID(w, r)
	if !ok {
		return
	}

	var body articleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid JSON body")
		return
	}

	article, err := h.service.UpdateArticle(r.Context(), articles.UpdateArticleRequest{
		ID:       id,
		Title:    body.Title,
		Content:  body.Content,
		CallerID: identity.UserID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// HandlePublish handles POST /articles/{id}/publish
// Only the author may publish.
func (h *ArticleHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	id, ok := articleID(w, r)
	if !ok {
		return
	}

	if err := h.service.PublishArticle(r.Context(), id, identity.UserID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "article published"})
}

// HandleGetBySlug handles GET /articles/{slug}
// Returns the article with rendered HTML and bumps its view counter.
func (h *ArticleHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "slug is required")
		return
	}

	view, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// HandleList handles GET /articles
// Supports limit and offset query parameters.
func (h *ArticleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "limit must be a valid integer")
			return
		}
		limit = parsed
	}

	offset := 0
	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "offset must be a valid integer")
			return
		}
		offset = parsed
	}

	views, err := h.service.ListPublished(r.Context(), limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func articleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "article id must be a valid integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode article response: %v", err)
	}
}
