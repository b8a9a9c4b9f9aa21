package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// fakeTrackRepo serves a fixed track set, applying the same coarse
// filters the SQL repository does
type fakeTrackRepo struct {
	tracks []*Track
}

func (f *fakeTrackRepo) ListRecentlyActive(ctx context.Context, since time.Time) ([]*Track, error) {
	var result []*Track
	for _, t := range f.tracks {
		if !t.Active {
			continue
		}
		if (t.LastPlayedAt != nil && !t.LastPlayedAt.Before(since)) ||
			!t.CreatedAt.Before(since) || !t.UpdatedAt.Before(since) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTrackRepo) ListActive(ctx context.Context) ([]*Track, error) {
	var result []*Track
	for _, t := range f.tracks {
		if t.Active {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTrackRepo) ListPlayed(ctx context.Context) ([]*Track, error) {
	var result []*Track
	for _, t := range f.tracks {
		if t.Active && t.PlayCount > 0 {
			result = append(result, t)
		}
	}
	return result, nil
}

func newTestRankingService(tracks ...*Track) Service {
	svc := NewRankingService(&fakeTrackRepo{tracks: tracks}, nil)
	svc.(*rankingService).now = func() time.Time { return testNow }
	return svc
}

func makeTrack(id int64, plays, likes, views int64, createdAt time.Time) *Track {
	played := createdAt
	return &Track{
		ID:           id,
		PlayCount:    plays,
		Likes:        likes,
		Views:        views,
		Active:       true,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		LastPlayedAt: &played,
	}
}

func TestTrendingScore_MonotonicInPlayCount(t *testing.T) {
	createdAt := testNow.Add(-48 * time.Hour)
	a := makeTrack(1, 100, 10, 10, createdAt)
	b := makeTrack(2, 50, 10, 10, createdAt)

	assert.GreaterOrEqual(t, TrendingScore(a, testNow), TrendingScore(b, testNow))
}

func TestTrendingScore_RecencyBonusTiers(t *testing.T) {
	base := makeTrack(1, 0, 0, 0, testNow.Add(-24*time.Hour))
	assert.InDelta(t, 0.1*10, TrendingScore(base, testNow), 1e-9, "within 7 days")

	base.CreatedAt = testNow.Add(-14 * 24 * time.Hour)
	assert.InDelta(t, 0.1*5, TrendingScore(base, testNow), 1e-9, "within 30 days")

	base.CreatedAt = testNow.Add(-60 * 24 * time.Hour)
	assert.InDelta(t, 0, TrendingScore(base, testNow), 1e-9, "older than 30 days")
}

func TestTrendingScore_Weights(t *testing.T) {
	track := makeTrack(1, 10, 20, 30, testNow.Add(-60*24*time.Hour))

	// 0.4*10 + 0.3*20 + 0.2*30 with no recency bonus
	assert.InDelta(t, 16.0, TrendingScore(track, testNow), 1e-9)
}

func TestGetTracks_TrendingOrdersByScore(t *testing.T) {
	createdAt := testNow.Add(-48 * time.Hour)
	service := newTestRankingService(
		makeTrack(1, 10, 0, 0, createdAt),
		makeTrack(2, 100, 0, 0, createdAt),
		makeTrack(3, 50, 0, 0, createdAt),
	)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: TypeTrending})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, []int64{2, 3, 1}, trackIDs(resp.Data))
	for _, v := range resp.Data {
		require.NotNil(t, v.Score, "trending results carry a computed score")
	}
}

func TestGetTracks_TrendingExcludesStaleTracks(t *testing.T) {
	service := newTestRankingService(
		makeTrack(1, 10, 0, 0, testNow.Add(-48*time.Hour)),
		makeTrack(2, 1000, 0, 0, testNow.Add(-90*24*time.Hour)),
	)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: TypeTrending})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, trackIDs(resp.Data))
}

func TestGetTracks_PopularTieBreaksNewerFirst(t *testing.T) {
	// Identical scores, different creation times.
	older := makeTrack(1, 100, 0, 0, testNow.Add(-400*24*time.Hour))
	newer := makeTrack(2, 100, 0, 0, testNow.Add(-100*24*time.Hour))
	service := newTestRankingService(older, newer)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: TypePopular})
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 1}, trackIDs(resp.Data))
}

func TestGetTracks_PopularViewsDiscounted(t *testing.T) {
	// 10 plays beat 99 views (9.9), lose to 101 views (10.1).
	service := newTestRankingService(
		makeTrack(1, 10, 0, 0, testNow.Add(-24*time.Hour)),
		makeTrack(2, 0, 0, 99, testNow.Add(-24*time.Hour)),
		makeTrack(3, 0, 0, 101, testNow.Add(-24*time.Hour)),
	)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: TypePopular})
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 1, 2}, trackIDs(resp.Data))
}

func TestGetTracks_MostPlayedOrderAndNoScore(t *testing.T) {
	service := newTestRankingService(
		makeTrack(1, 10, 5, 5, testNow.Add(-24*time.Hour)),
		makeTrack(2, 10, 5, 9, testNow.Add(-24*time.Hour)),
		makeTrack(3, 20, 0, 0, testNow.Add(-24*time.Hour)),
		makeTrack(4, 0, 100, 100, testNow.Add(-24*time.Hour)), // never played, excluded
	)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: TypeMostPlayed})
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 2, 1}, trackIDs(resp.Data))
	for _, v := range resp.Data {
		assert.Nil(t, v.Score, "mostPlayed carries no score")
	}
}

func TestGetTracks_UnknownTypeFallsBackToNewest(t *testing.T) {
	service := newTestRankingService(
		makeTrack(1, 100, 0, 0, testNow.Add(-72*time.Hour)),
		makeTrack(2, 0, 0, 0, testNow.Add(-24*time.Hour)),
	)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: "bogus"})
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 1}, trackIDs(resp.Data))
	for _, v := range resp.Data {
		assert.Nil(t, v.Score)
	}
}

func TestGetTracks_LimitDefaultsAndClamping(t *testing.T) {
	var tracks []*Track
	for i := int64(1); i <= 150; i++ {
		tracks = append(tracks, makeTrack(i, i, 0, 0, testNow.Add(-24*time.Hour)))
	}
	service := newTestRankingService(tracks...)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: TypePopular})
	require.NoError(t, err)
	assert.Len(t, resp.Data, DefaultLimit)
	assert.Equal(t, DefaultLimit, resp.Meta.Limit)

	resp, err = service.GetTracks(context.Background(), GetTracksRequest{Type: TypePopular, Limit: 500})
	require.NoError(t, err)
	assert.Len(t, resp.Data, MaxLimit)
	assert.Equal(t, MaxLimit, resp.Meta.Limit)
}

func TestGetTracks_MetaDescribesQuery(t *testing.T) {
	service := newTestRankingService(makeTrack(1, 1, 0, 0, testNow.Add(-24*time.Hour)))

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{
		Type:      TypeTrending,
		Limit:     5,
		Timeframe: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, TypeTrending, resp.Meta.Type)
	assert.Equal(t, 7, resp.Meta.Timeframe)
	assert.Equal(t, 5, resp.Meta.Limit)
	assert.Equal(t, 1, resp.Meta.Count)
	assert.Equal(t, testNow, resp.Meta.Timestamp)
}

func TestGetTracks_NullColumnsNormalized(t *testing.T) {
	track := makeTrack(1, 1, 0, 0, testNow.Add(-24*time.Hour))
	track.Title = nil
	track.Artist = nil
	service := newTestRankingService(track)

	resp, err := service.GetTracks(context.Background(), GetTracksRequest{Type: TypePopular})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	assert.Equal(t, "", resp.Data[0].Title)
	assert.Equal(t, "", resp.Data[0].Artist)
}

func trackIDs(views []TrackView) []int64 {
	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}
