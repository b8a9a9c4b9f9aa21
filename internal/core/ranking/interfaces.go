package ranking

import (
	"context"
	"time"
)

// Repository defines the data access interface for ranking candidates.
// Repositories apply the coarse candidate filters in SQL; scoring and
// final ordering happen in the service so the formulas stay in one
// place and under test.
type Repository interface {
	// ListRecentlyActive retrieves active tracks played, created, or
	// updated at or after the cutoff
	ListRecentlyActive(ctx context.Context, since time.Time) ([]*Track, error)

	// ListActive retrieves all active tracks
	ListActive(ctx context.Context) ([]*Track, error)

	// ListPlayed retrieves active tracks with at least one play
	ListPlayed(ctx context.Context) ([]*Track, error)
}
