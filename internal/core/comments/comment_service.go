package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// maxCommentGraphemes is the maximum length for comment content in graphemes
const maxCommentGraphemes = 10000

// Service defines the business logic interface for comment operations
type Service interface {
	// ListForArticle retrieves every approved comment on an article as a
	// flat list ordered by level, then creation time within a level
	ListForArticle(ctx context.Context, articleID int64) ([]CommentView, error)

	// ListTreeForArticle retrieves the same comments nested into reply trees
	ListTreeForArticle(ctx context.Context, articleID int64) ([]*TreeNode, error)

	// CreateComment creates a new top-level comment or reply
	CreateComment(ctx context.Context, req CreateCommentRequest) (*CreateCommentResponse, error)
}

// CreateCommentRequest contains parameters for creating a comment.
// Author fields come from the verified identity, never from the body.
type CreateCommentRequest struct {
	ArticleID   int64
	ParentID    *int64
	Content     string
	AuthorID    string
	AuthorName  string
	AuthorEmail string
}

// CreateCommentResponse contains the result of creating a comment
type CreateCommentResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type commentService struct {
	repo     Repository
	articles ArticleCounterRepository
	logger   *slog.Logger
}

// NewCommentService creates a new comment service instance
func NewCommentService(repo Repository, articles ArticleCounterRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:     repo,
		articles: articles,
		logger:   logger,
	}
}

func (s *commentService) ListForArticle(ctx context.Context, articleID int64) ([]CommentView, error) {
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	stored, err := s.repo.ListApprovedByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return AssignLevels(stored), nil
}

func (s *commentService) ListTreeForArticle(ctx context.Context, articleID int64) ([]*TreeNode, error) {
	flat, err := s.ListForArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return BuildTree(flat), nil
}

// CreateComment validates the reply reference, stores the comment as
// approved, and recomputes the article's denormalized comment counter.
func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*CreateCommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentEmpty
	}
	if uniseg.GraphemeClusterCount(content) > maxCommentGraphemes {
		return nil, ErrContentTooLong
	}

	if err := s.requireArticle(ctx, req.ArticleID); err != nil {
		return nil, err
	}

	// A reply must reference an approved comment on the same article.
	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if IsNotFound(err) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("failed to fetch parent comment: %w", err)
		}
		if parent.ArticleID != req.ArticleID {
			return nil, ErrParentMismatch
		}
		if parent.Status != StatusApproved {
			return nil, ErrParentNotApproved
		}
	}

	comment := &Comment{
		ArticleID:   req.ArticleID,
		ParentID:    req.ParentID,
		AuthorID:    req.AuthorID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     content,
		Status:      StatusApproved,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Recompute-and-overwrite rather than increment: a full COUNT(*) per
	// write costs more but cannot drift.
	if err := s.articles.RecomputeCommentCount(ctx, req.ArticleID); err != nil {
		s.logger.Error("failed to recompute comment count",
			"error", err,
			"article_id", req.ArticleID)
	}

	s.logger.Info("comment created",
		"comment_id", comment.ID,
		"article_id", req.ArticleID,
		"author", req.AuthorID)

	return &CreateCommentResponse{
		ID:        comment.ID,
		Message:   "comment created",
		Status:    comment.Status,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *commentService) requireArticle(ctx context.Context, articleID int64) error {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return fmt.Errorf("failed to check article: %w", err)
	}
	if !exists {
		return ErrArticleNotFound
	}
	return nil
}
