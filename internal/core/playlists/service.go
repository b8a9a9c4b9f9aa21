package playlists

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Service defines the business logic interface for playlist operations
type Service interface {
	// CreatePlaylist creates an empty playlist owned by the caller
	CreatePlaylist(ctx context.Context, ownerID, name string) (*Playlist, error)

	// GetPlaylist retrieves a playlist with its tracks in position order
	GetPlaylist(ctx context.Context, id int64) (*PlaylistView, error)

	// AddTrack appends a track to the playlist. Adding a track that is
	// already present is a success with AlreadyExists set, not an error.
	AddTrack(ctx context.Context, playlistID, trackID int64) (*AddTrackResponse, error)

	// RemoveTrack deletes a track from the playlist and renumbers the
	// remaining positions to stay dense
	RemoveTrack(ctx context.Context, playlistID, trackID int64) error

	// Reorder overwrites the playlist's positions to match the supplied
	// track ID order. The sequence must be a permutation of the current
	// track set.
	Reorder(ctx context.Context, playlistID int64, trackIDs []int64) error
}

// PlaylistView is a playlist with its track rows hydrated
type PlaylistView struct {
	ID        int64                `json:"id"`
	OwnerID   string               `json:"ownerId"`
	Name      string               `json:"name"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Tracks    []*PlaylistTrackView `json:"tracks"`
}

// PlaylistTrackView is the reader-facing shape of a playlist entry
type PlaylistTrackView struct {
	TrackID  int64     `json:"trackId"`
	Position int       `json:"position"`
	AddedAt  time.Time `json:"addedAt"`
}

// AddTrackResponse reports the outcome of an add
type AddTrackResponse struct {
	Message       string `json:"message"`
	AlreadyExists bool   `json:"alreadyExists"`
}

type playlistService struct {
	repo   Repository
	logger *slog.Logger
}

// NewPlaylistService creates a new playlist service instance
func NewPlaylistService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &playlistService{repo: repo, logger: logger}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, ownerID, name string) (*Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameEmpty
	}

	playlist := &Playlist{OwnerID: ownerID, Name: name}
	if err := s.repo.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	s.logger.Info("playlist created", "playlist_id", playlist.ID, "owner", ownerID)
	return playlist, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, id int64) (*PlaylistView, error) {
	playlist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tracks, err := s.repo.ListTracks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist tracks: %w", err)
	}

	trackViews := make([]*PlaylistTrackView, 0, len(tracks))
	for _, t := range tracks {
		trackViews = append(trackViews, &PlaylistTrackView{
			TrackID:  t.TrackID,
			Position: t.Position,
			AddedAt:  t.AddedAt,
		})
	}

	return &PlaylistView{
		ID:        playlist.ID,
		OwnerID:   playlist.OwnerID,
		Name:      playlist.Name,
		CreatedAt: playlist.CreatedAt,
		UpdatedAt: playlist.UpdatedAt,
		Tracks:    trackViews,
	}, nil
}

func (s *playlistService) AddTrack(ctx context.Context, playlistID, trackID int64) (*AddTrackResponse, error) {
	if _, err := s.repo.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}

	exists, err := s.repo.HasTrack(ctx, playlistID, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to check playlist track: %w", err)
	}
	if exists {
		// Idempotent no-op: nothing is written, no position changes.
		return &AddTrackResponse{
			Message:       "track already in playlist",
			AlreadyExists: true,
		}, nil
	}

	if err := s.repo.AddTrack(ctx, playlistID, trackID); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	s.logger.Info("track added to playlist", "playlist_id", playlistID, "track_id", trackID)
	return &AddTrackResponse{Message: "track added", AlreadyExists: false}, nil
}

func (s *playlistService) RemoveTrack(ctx context.Context, playlistID, trackID int64) error {
	if _, err := s.repo.GetByID(ctx, playlistID); err != nil {
		return err
	}

	if err := s.repo.RemoveTrack(ctx, playlistID, trackID); err != nil {
		return err
	}

	s.logger.Info("track removed from playlist", "playlist_id", playlistID, "track_id", trackID)
	return nil
}

func (s *playlistService) Reorder(ctx context.Context, playlistID int64, trackIDs []int64) error {
	if _, err := s.repo.GetByID(ctx, playlistID); err != nil {
		return err
	}

	current, err := s.repo.ListTracks(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("failed to list playlist tracks: %w", err)
	}

	if err := validateReorder(current, trackIDs); err != nil {
		return err
	}

	if err := s.repo.Reorder(ctx, playlistID, trackIDs); err != nil {
		return fmt.Errorf("failed to reorder playlist: %w", err)
	}

	s.logger.Info("playlist reordered", "playlist_id", playlistID, "tracks", len(trackIDs))
	return nil
}

// validateReorder rejects sequences with duplicates, omissions, or
// unknown track IDs: a reorder must be a permutation of the playlist's
// current track set, otherwise the dense-position invariant breaks.
func validateReorder(current []*PlaylistTrack, supplied []int64) error {
	if len(supplied) != len(current) {
		return ErrNotPermutation
	}

	existing := make(map[int64]bool, len(current))
	for _, t := range current {
		existing[t.TrackID] = true
	}

	seen := make(map[int64]bool, len(supplied))
	for _, id := range supplied {
		if !existing[id] || seen[id] {
			return ErrNotPermutation
		}
		seen[id] = true
	}

	return nil
}
