package postgres

import (
	"Cadenza/internal/core/playlists"
	"context"
	"database/sql"
	"fmt"
	"log"
)

type postgresPlaylistRepo struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PostgreSQL playlist repository
func NewPlaylistRepository(db *sql.DB) playlists.Repository {
	return &postgresPlaylistRepo{db: db}
}

// Create inserts a playlist and fills in generated fields
func (r *postgresPlaylistRepo) Create(ctx context.Context, playlist *playlists.Playlist) error {
	query := `
		INSERT INTO playlists (owner_id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, playlist.OwnerID, playlist.Name).
		Scan(&playlist.ID, &playlist.CreatedAt, &playlist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	return nil
}

// GetByID retrieves a playlist by ID
func (r *postgresPlaylistRepo) GetByID(ctx context.Context, id int64) (*playlists.Playlist, error) {
	query := `
		SELECT id, owner_id, name, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`

	playlist := &playlists.Playlist{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&playlist.ID, &playlist.OwnerID, &playlist.Name,
		&playlist.CreatedAt, &playlist.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, playlists.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	return playlist, nil
}

// ListTracks retrieves the playlist's rows ordered by position ascending
func (r *postgresPlaylistRepo) ListTracks(ctx context.Context, playlistID int64) ([]*playlists.PlaylistTrack, error) {
	query := `
		SELECT playlist_id, track_id, position, added_at
		FROM playlist_tracks
		WHERE playlist_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist tracks: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	var result []*playlists.PlaylistTrack
	for rows.Next() {
		track := &playlists.PlaylistTrack{}
		if err := rows.Scan(
			&track.PlaylistID, &track.TrackID, &track.Position, &track.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan playlist track: %w", err)
		}
		result = append(result, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlist tracks: %w", err)
	}

	return result, nil
}

// HasTrack reports whether the (playlist, track) pair exists
func (r *postgresPlaylistRepo) HasTrack(ctx context.Context, playlistID, trackID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM playlist_tracks WHERE playlist_id = $1 AND track_id = $2)`,
		playlistID, trackID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check playlist track: %w", err)
	}
	return exists, nil
}

// AddTrack appends the track at max(position)+1. The playlist row is
// locked for the duration so concurrent appends cannot race to the
// same position.
func (r *postgresPlaylistRepo) AddTrack(ctx context.Context, playlistID, trackID int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPlaylist(ctx, tx, playlistID); err != nil {
			return err
		}

		query := `
			INSERT INTO playlist_tracks (playlist_id, track_id, position, added_at)
			VALUES (
				$1, $2,
				(SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_tracks WHERE playlist_id = $1),
				NOW()
			)
			ON CONFLICT (playlist_id, track_id) DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, playlistID, trackID); err != nil {
			return fmt.Errorf("failed to insert playlist track: %w", err)
		}

		return touchPlaylist(ctx, tx, playlistID)
	})
}

// RemoveTrack deletes the pair and decrements every higher position so
// the sequence stays dense with no gap at the removed slot.
func (r *postgresPlaylistRepo) RemoveTrack(ctx context.Context, playlistID, trackID int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPlaylist(ctx, tx, playlistID); err != nil {
			return err
		}

		var removed int
		err := tx.QueryRowContext(ctx,
			`DELETE FROM playlist_tracks WHERE playlist_id = $1 AND track_id = $2 RETURNING position`,
			playlistID, trackID,
		).Scan(&removed)

		if err == sql.ErrNoRows {
			return playlists.ErrTrackNotInPlaylist
		}
		if err != nil {
			return fmt.Errorf("failed to delete playlist track: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE playlist_tracks SET position = position - 1 WHERE playlist_id = $1 AND position > $2`,
			playlistID, removed,
		)
		if err != nil {
			return fmt.Errorf("failed to close position gap: %w", err)
		}

		return touchPlaylist(ctx, tx, playlistID)
	})
}

// Reorder overwrites each listed track's position with its 1-based
// index. The service validates the list is a permutation of the current
// track set before calling this.
func (r *postgresPlaylistRepo) Reorder(ctx context.Context, playlistID int64, trackIDs []int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPlaylist(ctx, tx, playlistID); err != nil {
			return err
		}

		// The unique (playlist_id, position) constraint is deferred, so
		// per-row updates may pass through transient duplicates.
		stmt, err := tx.PrepareContext(ctx,
			`UPDATE playlist_tracks SET position = $3 WHERE playlist_id = $1 AND track_id = $2`)
		if err != nil {
			return fmt.Errorf("failed to prepare reorder statement: %w", err)
		}
		defer func() {
			if err := stmt.Close(); err != nil {
				log.Printf("Failed to close statement: %v", err)
			}
		}()

		for i, trackID := range trackIDs {
			if _, err := stmt.ExecContext(ctx, playlistID, trackID, i+1); err != nil {
				return fmt.Errorf("failed to set position for track %d: %w", trackID, err)
			}
		}

		return touchPlaylist(ctx, tx, playlistID)
	})
}

// inTx runs fn in a transaction, rolling back on error
func (r *postgresPlaylistRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("Failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// lockPlaylist takes a row lock on the parent playlist, serializing
// position mutations per playlist
func lockPlaylist(ctx context.Context, tx *sql.Tx, playlistID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM playlists WHERE id = $1 FOR UPDATE`, playlistID,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return playlists.ErrPlaylistNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock playlist: %w", err)
	}

	return nil
}

func touchPlaylist(ctx context.Context, tx *sql.Tx, playlistID int64) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE playlists SET updated_at = NOW() WHERE id = $1`, playlistID,
	); err != nil {
		return fmt.Errorf("failed to touch playlist: %w", err)
	}
	return nil
}
