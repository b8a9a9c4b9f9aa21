package ranking

import "time"

// Ranking types accepted by the tracks endpoint. Anything else falls
// back to newest-first with no scoring.
const (
	TypeTrending   = "trending"
	TypePopular    = "popular"
	TypeMostPlayed = "mostPlayed"
)

const (
	// DefaultLimit caps the result count when the caller doesn't supply one
	DefaultLimit = 20
	// MaxLimit is the hard cap on the result count
	MaxLimit = 100
	// DefaultTimeframeDays is the trending candidate window in days
	DefaultTimeframeDays = 30
)

// GetTracksRequest defines the parameters for a ranking query
type GetTracksRequest struct {
	Type      string
	Limit     int
	Timeframe int // days, only meaningful for trending
}

// TrackView is the normalized output shape. Every row is coerced to the
// same shape regardless of which query path produced it: null text
// columns become empty strings, null counters become zero. Score is set
// only when the ranking type computed one.
type TrackView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Album     string    `json:"album"`
	CoverURL  string    `json:"coverUrl"`
	PlayCount int64     `json:"playCount"`
	Likes     int64     `json:"likes"`
	Views     int64     `json:"views"`
	Downloads int64     `json:"downloads"`
	CreatedAt time.Time `json:"createdAt"`
	Score     *float64  `json:"score,omitempty"`
}

// Meta describes the query that produced a ranking response
type Meta struct {
	Type      string    `json:"type"`
	Timeframe int       `json:"timeframe"`
	Limit     int       `json:"limit"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// GetTracksResponse is the envelope returned by the ranking endpoint
type GetTracksResponse struct {
	Success bool        `json:"success"`
	Data    []TrackView `json:"data"`
	Meta    Meta        `json:"meta"`
}
