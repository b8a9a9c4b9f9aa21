package playlists

import "errors"

var (
	// ErrPlaylistNotFound indicates the requested playlist doesn't exist
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrTrackNotInPlaylist indicates the (playlist, track) pair doesn't exist
	ErrTrackNotInPlaylist = errors.New("track not in playlist")

	// ErrNameEmpty indicates the playlist name is missing
	ErrNameEmpty = errors.New("playlist name is required")

	// ErrNotPermutation indicates a reorder sequence that isn't a
	// permutation of the playlist's current track set
	ErrNotPermutation = errors.New("reorder sequence must contain each playlist track exactly once")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPlaylistNotFound) ||
		errors.Is(err, ErrTrackNotInPlaylist)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameEmpty) ||
		errors.Is(err, ErrNotPermutation)
}
