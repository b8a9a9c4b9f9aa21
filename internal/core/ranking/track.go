package ranking

import "time"

// Track represents a catalog track row as used by the ranking queries.
// Counter fields are maintained by the upload and playback-tracking
// flows; ranking only ever reads them.
type Track struct {
	ID           int64
	Title        *string
	Artist       *string
	Album        *string
	CoverURL     *string
	PlayCount    int64
	Likes        int64
	Views        int64
	Downloads    int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastPlayedAt *time.Time
}
