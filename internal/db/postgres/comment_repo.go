package postgres

import (
	"Cadenza/internal/core/comments"
	"context"
	"database/sql"
	"fmt"
	"log"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment and fills in the generated id and created_at
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (
			article_id, parent_comment_id,
			author_id, author_name, author_email,
			content, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		comment.ArticleID, comment.ParentID,
		comment.AuthorID, comment.AuthorName, comment.AuthorEmail,
		comment.Content, comment.Status,
	).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by its ID
func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `
		SELECT id, article_id, parent_comment_id,
		       author_id, author_name, author_email,
		       content, status, created_at
		FROM comments
		WHERE id = $1
	`

	comment := &comments.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ArticleID, &comment.ParentID,
		&comment.AuthorID, &comment.AuthorName, &comment.AuthorEmail,
		&comment.Content, &comment.Status, &comment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListApprovedByArticle retrieves every approved comment on an article,
// ordered by created_at ascending. Level assignment happens in the
// service layer.
func (r *postgresCommentRepo) ListApprovedByArticle(ctx context.Context, articleID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, article_id, parent_comment_id,
		       author_id, author_name, author_email,
		       content, status, created_at
		FROM comments
		WHERE article_id = $1 AND status = 'approved'
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	var result []*comments.Comment
	for rows.Next() {
		comment := &comments.Comment{}
		if err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.ParentID,
			&comment.AuthorID, &comment.AuthorName, &comment.AuthorEmail,
			&comment.Content, &comment.Status, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return result, nil
}
