package shared

import "fmt"

var (
	// Error kinds. Specific errors below wrap one of these so callers can match on the kind with errors.Is.
	ErrNotFound      = fmt.Errorf("not found")
	ErrAlreadyExists = fmt.Errorf("already exists")
	ErrInvalidState  = fmt.Errorf("invalid state")

	// Catalog errors
	ErrVideoNotFound = fmt.Errorf("video %w", ErrNotFound)
	ErrCatalogEmpty  = fmt.Errorf("catalog empty: %w", ErrNotFound)
	ErrDuplicateID   = fmt.Errorf("duplicate video id")
	ErrMalformedLine = fmt.Errorf("malformed catalog line")

	// Playback errors
	ErrNothingPlaying = fmt.Errorf("%w: nothing playing", ErrInvalidState)
	ErrNotPaused      = fmt.Errorf("%w: not paused", ErrInvalidState)

	// Playlist errors
	ErrPlaylistNotFound  = fmt.Errorf("playlist %w", ErrNotFound)
	ErrPlaylistExists    = fmt.Errorf("playlist %w", ErrAlreadyExists)
	ErrAlreadyInPlaylist = fmt.Errorf("video already in playlist")
	ErrNotInPlaylist     = fmt.Errorf("video not in playlist")

	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
