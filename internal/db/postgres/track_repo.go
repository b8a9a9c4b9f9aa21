package postgres

import (
	"Cadenza/internal/core/ranking"
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

type postgresTrackRepo struct {
	db *sql.DB
}

// NewTrackRepository creates a new PostgreSQL track repository
func NewTrackRepository(db *sql.DB) ranking.Repository {
	return &postgresTrackRepo{db: db}
}

const trackColumns = `
	id, title, artist, album, cover_url,
	play_count, likes, views, downloads,
	active, created_at, updated_at, last_played_at
`

// ListRecentlyActive retrieves active tracks played, created, or updated
// at or after the cutoff. Scoring happens in the service.
func (r *postgresTrackRepo) ListRecentlyActive(ctx context.Context, since time.Time) ([]*ranking.Track, error) {
	query := `
		SELECT ` + trackColumns + `
		FROM tracks
		WHERE active = TRUE
		  AND (last_played_at >= $1 OR created_at >= $1 OR updated_at >= $1)
	`
	return r.list(ctx, query, since)
}

// ListActive retrieves all active tracks
func (r *postgresTrackRepo) ListActive(ctx context.Context) ([]*ranking.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE active = TRUE`
	return r.list(ctx, query)
}

// ListPlayed retrieves active tracks with at least one play
func (r *postgresTrackRepo) ListPlayed(ctx context.Context) ([]*ranking.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE active = TRUE AND play_count > 0`
	return r.list(ctx, query)
}

func (r *postgresTrackRepo) list(ctx context.Context, query string, args ...interface{}) ([]*ranking.Track, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	var result []*ranking.Track
	for rows.Next() {
		track := &ranking.Track{}
		if err := rows.Scan(
			&track.ID, &track.Title, &track.Artist, &track.Album, &track.CoverURL,
			&track.PlayCount, &track.Likes, &track.Views, &track.Downloads,
			&track.Active, &track.CreatedAt, &track.UpdatedAt, &track.LastPlayedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		result = append(result, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracks: %w", err)
	}

	return result, nil
}
