package playlists

import "context"

// Repository defines the data access interface for playlists.
//
// The position-maintaining mutations (AddTrack, RemoveTrack, Reorder)
// each run their statements in a single transaction and touch the
// parent playlist's updated_at before committing, so the dense-position
// invariant survives concurrent mutations and crashes.
type Repository interface {
	// Create inserts a playlist and fills in its generated ID and timestamps
	Create(ctx context.Context, playlist *Playlist) error

	// GetByID retrieves a playlist by ID
	GetByID(ctx context.Context, id int64) (*Playlist, error)

	// ListTracks retrieves the playlist's rows ordered by position ascending
	ListTracks(ctx context.Context, playlistID int64) ([]*PlaylistTrack, error)

	// HasTrack reports whether the (playlist, track) pair exists
	HasTrack(ctx context.Context, playlistID, trackID int64) (bool, error)

	// AddTrack inserts the track at max(position)+1 (1 when empty)
	AddTrack(ctx context.Context, playlistID, trackID int64) error

	// RemoveTrack deletes the pair and decrements every higher position,
	// closing the gap. Returns ErrTrackNotInPlaylist if the pair is absent.
	RemoveTrack(ctx context.Context, playlistID, trackID int64) error

	// Reorder overwrites each listed track's position with its 1-based
	// index in trackIDs
	Reorder(ctx context.Context, playlistID int64, trackIDs []int64) error
}
