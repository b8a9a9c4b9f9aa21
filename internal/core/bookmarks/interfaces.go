package bookmarks

import "context"

// Repository defines the data access interface for bookmarks
type Repository interface {
	// Exists reports whether the (user, article) bookmark exists
	Exists(ctx context.Context, userID string, articleID int64) (bool, error)

	// Create inserts the bookmark; duplicate pairs are a no-op
	Create(ctx context.Context, userID string, articleID int64) error

	// Delete removes the bookmark
	Delete(ctx context.Context, userID string, articleID int64) error

	// CountByArticle counts bookmarks on an article
	CountByArticle(ctx context.Context, articleID int64) (int64, error)
}

// ArticleChecker is the slice of the article repository the bookmark
// service needs.
type ArticleChecker interface {
	Exists(ctx context.Context, articleID int64) (bool, error)
}
