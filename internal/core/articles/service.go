package articles

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Service defines the business logic interface for article operations
type Service interface {
	// CreateArticle creates a draft article with a slug derived from the title
	CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error)

	// UpdateArticle rewrites title and content; author only
	UpdateArticle(ctx context.Context, req UpdateArticleRequest) (*Article, error)

	// PublishArticle flips the article to published; author only
	PublishArticle(ctx context.Context, id int64, callerID string) error

	// GetBySlug retrieves an article with rendered HTML and bumps its
	// view counter
	GetBySlug(ctx context.Context, slug string) (*ArticleView, error)

	// ListPublished retrieves published articles, newest first
	ListPublished(ctx context.Context, limit, offset int) ([]*ArticleView, error)
}

// CreateArticleRequest contains parameters for creating an article
type CreateArticleRequest struct {
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
}

// UpdateArticleRequest contains parameters for updating an article
type UpdateArticleRequest struct {
	ID       int64
	Title    string
	Content  string
	CallerID string
}

// ArticleView is the reader-facing shape of an article
type ArticleView struct {
	ID           int64      `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	HTML         string     `json:"html,omitempty"`
	AuthorName   string     `json:"authorName"`
	Status       string     `json:"status"`
	CommentCount int64      `json:"commentCount"`
	ViewCount    int64      `json:"viewCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

type articleService struct {
	repo   Repository
	logger *slog.Logger
}

// NewArticleService creates a new article service instance
func NewArticleService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &articleService{repo: repo, logger: logger}
}

func (s *articleService) CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleEmpty
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentEmpty
	}

	slug, err := s.uniqueSlug(ctx, title)
	if err != nil {
		return nil, err
	}

	article := &Article{
		Slug:       slug,
		Title:      title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
		Status:     StatusDraft,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.logger.Info("article created", "article_id", article.ID, "slug", slug, "author", req.AuthorID)
	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, req UpdateArticleRequest) (*Article, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleEmpty
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentEmpty
	}

	article, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != req.CallerID {
		return nil, ErrNotAuthor
	}

	article.Title = title
	article.Content = req.Content

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	s.logger.Info("article updated", "article_id", article.ID)
	return article, nil
}

func (s *articleService) PublishArticle(ctx context.Context, id int64, callerID string) error {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article.AuthorID != callerID {
		return ErrNotAuthor
	}

	if err := s.repo.Publish(ctx, id); err != nil {
		return fmt.Errorf("failed to publish article: %w", err)
	}

	s.logger.Info("article published", "article_id", id)
	return nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*ArticleView, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// A failed view-count bump shouldn't fail the read.
	if err := s.repo.IncrementViewCount(ctx, article.ID); err != nil {
		s.logger.Error("failed to bump view count", "error", err, "article_id", article.ID)
	} else {
		article.ViewCount++
	}

	view := toView(article)
	view.HTML = RenderContent(article.Content)
	return view, nil
}

func (s *articleService) ListPublished(ctx context.Context, limit, offset int) ([]*ArticleView, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	stored, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	views := make([]*ArticleView, 0, len(stored))
	for _, a := range stored {
		views = append(views, toView(a))
	}
	return views, nil
}

// uniqueSlug derives a slug from the title, suffixing a counter when
// the plain slug is taken.
func (s *articleService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = "article"
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(i)
	}
}

func toView(a *Article) *ArticleView {
	return &ArticleView{
		ID:           a.ID,
		Slug:         a.Slug,
		Title:        a.Title,
		Content:      a.Content,
		AuthorName:   a.AuthorName,
		Status:       a.Status,
		CommentCount: a.CommentCount,
		ViewCount:    a.ViewCount,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		PublishedAt:  a.PublishedAt,
	}
}
