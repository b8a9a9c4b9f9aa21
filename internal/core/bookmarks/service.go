// Package bookmarks lets users save articles. A bookmark is just the
// (user, article) pair; toggling flips it.
package bookmarks

import (
	"context"
	"fmt"
	"log/slog"
)

// Service defines the business logic interface for bookmark operations
type Service interface {
	// Toggle flips the caller's bookmark on an article and returns the
	// new state plus the article's bookmark count
	Toggle(ctx context.Context, userID string, articleID int64) (*ToggleResponse, error)
}

// ToggleResponse reports the state after a toggle
type ToggleResponse struct {
	Bookmarked bool  `json:"bookmarked"`
	Count      int64 `json:"count"`
}

type bookmarkService struct {
	repo     Repository
	articles ArticleChecker
	logger   *slog.Logger
}

// NewBookmarkService creates a new bookmark service instance
func NewBookmarkService(repo Repository, articles ArticleChecker, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookmarkService{repo: repo, articles: articles, logger: logger}
}

func (s *bookmarkService) Toggle(ctx context.Context, userID string, articleID int64) (*ToggleResponse, error) {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check article: %w", err)
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	bookmarked, err := s.repo.Exists(ctx, userID, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check bookmark: %w", err)
	}

	if bookmarked {
		if err := s.repo.Delete(ctx, userID, articleID); err != nil {
			return nil, fmt.Errorf("failed to delete bookmark: %w", err)
		}
	} else {
		if err := s.repo.Create(ctx, userID, articleID); err != nil {
			return nil, fmt.Errorf("failed to create bookmark: %w", err)
		}
	}

	count, err := s.repo.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookmarks: %w", err)
	}

	return &ToggleResponse{Bookmarked: !bookmarked, Count: count}, nil
}
