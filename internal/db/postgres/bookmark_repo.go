package postgres

import (
	"Cadenza/internal/core/bookmarks"
	"context"
	"database/sql"
	"fmt"
)

type postgresBookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new PostgreSQL bookmark repository
func NewBookmarkRepository(db *sql.DB) bookmarks.Repository {
	return &postgresBookmarkRepo{db: db}
}

// Exists reports whether the (user, article) bookmark exists
func (r *postgresBookmarkRepo) Exists(ctx context.Context, userID string, articleID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND article_id = $2)`,
		userID, articleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return exists, nil
}

// Create inserts the bookmark; duplicate pairs are a no-op
func (r *postgresBookmarkRepo) Create(ctx context.Context, userID string, articleID int64) error {
	query := `
		INSERT INTO bookmarks (user_id, article_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, article_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, articleID); err != nil {
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}
	return nil
}

// Delete removes the bookmark
func (r *postgresBookmarkRepo) Delete(ctx context.Context, userID string, articleID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND article_id = $2`,
		userID, articleID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

// CountByArticle counts bookmarks on an article
func (r *postgresBookmarkRepo) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookmarks WHERE article_id = $1`, articleID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return count, nil
}
