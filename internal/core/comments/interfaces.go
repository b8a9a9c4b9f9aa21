package comments

import "context"

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a new comment and fills in its generated ID and CreatedAt
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment by its ID
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// ListApprovedByArticle retrieves every approved comment on an article,
	// ordered by created_at ascending. Depth assignment happens in the
	// service layer, not in SQL.
	ListApprovedByArticle(ctx context.Context, articleID int64) ([]*Comment, error)
}

// ArticleCounterRepository is the slice of the article repository the
// comment service needs: existence checks and the denormalized counter
// recompute after each write.
type ArticleCounterRepository interface {
	// Exists reports whether an article with the given ID exists
	Exists(ctx context.Context, articleID int64) (bool, error)

	// RecomputeCommentCount overwrites the article's comment_count with a
	// fresh COUNT(*) over approved comments
	RecomputeCommentCount(ctx context.Context, articleID int64) error
}
