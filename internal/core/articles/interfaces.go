package articles

import "context"

// Repository defines the data access interface for articles
type Repository interface {
	// Create inserts an article and fills in its generated ID and timestamps
	Create(ctx context.Context, article *Article) error

	// Update rewrites title, content, slug, and updated_at
	Update(ctx context.Context, article *Article) error

	// GetByID retrieves an article by ID
	GetByID(ctx context.Context, id int64) (*Article, error)

	// GetBySlug retrieves an article by slug
	GetBySlug(ctx context.Context, slug string) (*Article, error)

	// SlugExists reports whether a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Exists reports whether an article with the given ID exists
	Exists(ctx context.Context, articleID int64) (bool, error)

	// ListPublished retrieves published articles, newest first
	ListPublished(ctx context.Context, limit, offset int) ([]*Article, error)

	// Publish marks the article published and stamps published_at
	Publish(ctx context.Context, id int64) error

	// IncrementViewCount bumps the denormalized view counter
	IncrementViewCount(ctx context.Context, id int64) error

	// RecomputeCommentCount overwrites comment_count with a fresh
	// COUNT(*) over approved comments
	RecomputeCommentCount(ctx context.Context, articleID int64) error
}
