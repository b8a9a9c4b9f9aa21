package playlists

import "time"

// Playlist represents a user-owned ordered collection of tracks
type Playlist struct {
	ID        int64
	OwnerID   string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlaylistTrack is the join row placing a track in a playlist.
// Positions within one playlist are dense 1-based integers: contiguous,
// no gaps, no duplicates, after any successful mutation.
type PlaylistTrack struct {
	PlaylistID int64
	TrackID    int64
	Position   int
	AddedAt    time.Time
}
