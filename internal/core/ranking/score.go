package ranking

import "time"

// Trending score weights. The score is ephemeral: computed per query,
// never persisted.
const (
	weightPlays  = 0.4
	weightLikes  = 0.3
	weightViews  = 0.2
	weightRecent = 0.1
)

// TrendingScore computes the weighted engagement score used by the
// trending ranking.
func TrendingScore(t *Track, now time.Time) float64 {
	return weightPlays*float64(t.PlayCount) +
		weightLikes*float64(t.Likes) +
		weightViews*float64(t.Views) +
		weightRecent*recencyBonus(t.CreatedAt, now)
}

// recencyBonus rewards newly created tracks: 10 within 7 days of
// creation, 5 within 30 days, 0 after that.
func recencyBonus(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt)
	switch {
	case age <= 7*24*time.Hour:
		return 10
	case age <= 30*24*time.Hour:
		return 5
	default:
		return 0
	}
}

// PopularScore computes the all-time popularity score: raw plays and
// likes with views discounted by an order of magnitude.
func PopularScore(t *Track) float64 {
	return float64(t.PlayCount) + float64(t.Likes) + 0.1*float64(t.Views)
}
