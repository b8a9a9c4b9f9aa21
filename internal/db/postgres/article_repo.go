package postgres

import (
	"Cadenza/internal/core/articles"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type postgresArticleRepo struct {
	db *sql.DB
}

// NewArticleRepository creates a new PostgreSQL article repository
func NewArticleRepository(db *sql.DB) articles.Repository {
	return &postgresArticleRepo{db: db}
}

const articleColumns = `
	id, slug, title, content,
	author_id, author_name, status,
	comment_count, view_count,
	created_at, updated_at, published_at
`

// Create inserts an article and fills in generated fields
func (r *postgresArticleRepo) Create(ctx context.Context, article *articles.Article) error {
	query := `
		INSERT INTO articles (
			slug, title, content,
			author_id, author_name, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		article.Slug, article.Title, article.Content,
		article.AuthorID, article.AuthorName, article.Status,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)

	if err != nil {
		// A concurrent create can take the slug between the service's
		// uniqueness check and this insert.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return articles.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// Update rewrites title and content and stamps updated_at
func (r *postgresArticleRepo) Update(ctx context.Context, article *articles.Article) error {
	query := `
		UPDATE articles
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.ID,
	).Scan(&article.UpdatedAt)

	if err == sql.ErrNoRows {
		return articles.ErrArticleNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

// GetByID retrieves an article by ID
func (r *postgresArticleRepo) GetByID(ctx context.Context, id int64) (*articles.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves an article by slug
func (r *postgresArticleRepo) GetBySlug(ctx context.Context, slug string) (*articles.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug))
}

// SlugExists reports whether a slug is already taken
func (r *postgresArticleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// Exists reports whether an article with the given ID exists
func (r *postgresArticleRepo) Exists(ctx context.Context, articleID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, articleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article: %w", err)
	}
	return exists, nil
}

// ListPublished retrieves published articles, newest first
func (r *postgresArticleRepo) ListPublished(ctx context.Context, limit, offset int) ([]*articles.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = 'published'
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	var result []*articles.Article
	for rows.Next() {
		article := &articles.Article{}
		if err := rows.Scan(
			&article.ID, &article.Slug, &article.Title, &article.Content,
			&article.AuthorID, &article.AuthorName, &article.Status,
			&article.CommentCount, &article.ViewCount,
			&article.CreatedAt, &article.UpdatedAt, &article.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		result = append(result, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return result, nil
}

// Publish marks the article published and stamps published_at once
func (r *postgresArticleRepo) Publish(ctx context.Context, id int64) error {
	query := `
		UPDATE articles
		SET status = 'published',
		    published_at = COALESCE(published_at, NOW()),
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to publish article: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check publish result: %w", err)
	}
	if affected == 0 {
		return articles.ErrArticleNotFound
	}

	return nil
}

// IncrementViewCount bumps the denormalized view counter
func (r *postgresArticleRepo) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE articles SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

// RecomputeCommentCount overwrites comment_count with a fresh COUNT(*)
// over approved comments. Recompute-and-overwrite cannot drift the way
// increment/decrement bookkeeping can.
func (r *postgresArticleRepo) RecomputeCommentCount(ctx context.Context, articleID int64) error {
	query := `
		UPDATE articles
		SET comment_count = (
			SELECT COUNT(*) FROM comments
			WHERE article_id = $1 AND status = 'approved'
		)
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, articleID); err != nil {
		return fmt.Errorf("failed to recompute comment count: %w", err)
	}
	return nil
}

func (r *postgresArticleRepo) scanOne(row *sql.Row) (*articles.Article, error) {
	article := &articles.Article{}
	err := row.Scan(
		&article.ID, &article.Slug, &article.Title, &article.Content,
		&article.AuthorID, &article.AuthorName, &article.Status,
		&article.CommentCount, &article.ViewCount,
		&article.CreatedAt, &article.UpdatedAt, &article.PublishedAt,
	)

	if err == sql.ErrNoRows {
		return nil, articles.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}
