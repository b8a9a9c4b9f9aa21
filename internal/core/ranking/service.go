package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Service defines the business logic interface for track ranking
type Service interface {
	// GetTracks returns an ordered slice of tracks for the requested
	// ranking type
	GetTracks(ctx context.Context, req GetTracksRequest) (*GetTracksResponse, error)
}

type rankingService struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewRankingService creates a new ranking service instance
func NewRankingService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &rankingService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *rankingService) GetTracks(ctx context.Context, req GetTracksRequest) (*GetTracksResponse, error) {
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	if req.Timeframe <= 0 {
		req.Timeframe = DefaultTimeframeDays
	}

	now := s.now().UTC()

	var views []TrackView
	var err error
	switch req.Type {
	case TypeTrending:
		views, err = s.trending(ctx, now, req.Timeframe)
	case TypePopular:
		views, err = s.popular(ctx)
	case TypeMostPlayed:
		views, err = s.mostPlayed(ctx)
	default:
		// Unknown types fall back to newest-first with no scoring.
		views, err = s.newest(ctx)
	}
	if err != nil {
		return nil, err
	}

	if len(views) > req.Limit {
		views = views[:req.Limit]
	}

	return &GetTracksResponse{
		Success: true,
		Data:    views,
		Meta: Meta{
			Type:      req.Type,
			Timeframe: req.Timeframe,
			Limit:     req.Limit,
			Count:     len(views),
			Timestamp: now,
		},
	}, nil
}

// trending scores tracks active within the timeframe window and orders
// by score desc, then plays desc, then views desc.
func (s *rankingService) trending(ctx context.Context, now time.Time, timeframeDays int) ([]TrackView, error) {
	since := now.Add(-time.Duration(timeframeDays) * 24 * time.Hour)
	tracks, err := s.repo.ListRecentlyActive(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending candidates: %w", err)
	}

	scores := make(map[int64]float64, len(tracks))
	for _, t := range tracks {
		scores[t.ID] = TrendingScore(t, now)
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		a, b := tracks[i], tracks[j]
		if scores[a.ID] != scores[b.ID] {
			return scores[a.ID] > scores[b.ID]
		}
		if a.PlayCount != b.PlayCount {
			return a.PlayCount > b.PlayCount
		}
		return a.Views > b.Views
	})

	views := make([]TrackView, 0, len(tracks))
	for _, t := range tracks {
		v := toView(t)
		score := scores[t.ID]
		v.Score = &score
		views = append(views, v)
	}
	return views, nil
}

// popular scores every active track and orders by score desc with
// newer-wins tie-breaking on created_at.
func (s *rankingService) popular(ctx context.Context) ([]TrackView, error) {
	tracks, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular candidates: %w", err)
	}

	scores := make(map[int64]float64, len(tracks))
	for _, t := range tracks {
		scores[t.ID] = PopularScore(t)
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		a, b := tracks[i], tracks[j]
		if scores[a.ID] != scores[b.ID] {
			return scores[a.ID] > scores[b.ID]
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	views := make([]TrackView, 0, len(tracks))
	for _, t := range tracks {
		v := toView(t)
		score := scores[t.ID]
		v.Score = &score
		views = append(views, v)
	}
	return views, nil
}

// mostPlayed orders played tracks directly by counters, no score.
func (s *rankingService) mostPlayed(ctx context.Context) ([]TrackView, error) {
	tracks, err := s.repo.ListPlayed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list most played: %w", err)
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		a, b := tracks[i], tracks[j]
		if a.PlayCount != b.PlayCount {
			return a.PlayCount > b.PlayCount
		}
		if a.Views != b.Views {
			return a.Views > b.Views
		}
		return a.Likes > b.Likes
	})

	return toViews(tracks), nil
}

func (s *rankingService) newest(ctx context.Context) ([]TrackView, error) {
	tracks, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].CreatedAt.After(tracks[j].CreatedAt)
	})

	return toViews(tracks), nil
}

func toViews(tracks []*Track) []TrackView {
	views := make([]TrackView, 0, len(tracks))
	for _, t := range tracks {
		views = append(views, toView(t))
	}
	return views
}

// toView normalizes a track row to the fixed output shape, substituting
// zero values for null columns.
func toView(t *Track) TrackView {
	return TrackView{
		ID:        t.ID,
		Title:     strOrEmpty(t.Title),
		Artist:    strOrEmpty(t.Artist),
		Album:     strOrEmpty(t.Album),
		CoverURL:  strOrEmpty(t.CoverURL),
		PlayCount: t.PlayCount,
		Likes:     t.Likes,
		Views:     t.Views,
		Downloads: t.Downloads,
		CreatedAt: t.CreatedAt,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
