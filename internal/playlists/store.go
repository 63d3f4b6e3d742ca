package playlists

import (
	"fmt"
	"maps"
	"slices"

	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/shared"
)

// Store maps playlist keys to playlists and is the only writer of them.
//
// Every method takes the display name and resolves it with [Key], so "My List", "my list" and "MY LIST" all address
// the same playlist. Playlists returned by the store are copies. A Store is not safe for concurrent use.
type Store struct {
	catalog   models.Catalog
	playlists map[string]*Playlist
}

// NewStore creates an empty store that checks video ids against catalog.
func NewStore(catalog models.Catalog) *Store {
	return &Store{catalog: catalog, playlists: make(map[string]*Playlist)}
}

// Create adds an empty playlist, keeping name as its display form.
func (s *Store) Create(name string) (*Playlist, error) {
	key := Key(name)
	if _, ok := s.playlists[key]; ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistExists, name)
	}

	p := newPlaylist(name)
	s.playlists[key] = p
	return p.clone(), nil
}

// AddVideo appends videoID to the playlist.
//
// Checks run in order: playlist exists, video exists in the catalog, video not already a member.
func (s *Store) AddVideo(name, videoID string) (models.Video, error) {
	p, err := s.lookup(name)
	if err != nil {
		return models.Video{}, err
	}

	video, ok := s.catalog.Get(videoID)
	if !ok {
		return models.Video{}, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, videoID)
	}

	if p.Contains(videoID) {
		return models.Video{}, fmt.Errorf("%w: %s", shared.ErrAlreadyInPlaylist, videoID)
	}

	p.Videos = append(p.Videos, video)
	return video, nil
}

// RemoveVideo removes videoID from the playlist.
//
// Catalog existence is checked before membership, so an id unknown to the catalog is always
// [shared.ErrVideoNotFound] and a known id missing from the playlist is always [shared.ErrNotInPlaylist],
// regardless of whether the playlist is empty.
func (s *Store) RemoveVideo(name, videoID string) (models.Video, error) {
	p, err := s.lookup(name)
	if err != nil {
		return models.Video{}, err
	}

	video, ok := s.catalog.Get(videoID)
	if !ok {
		return models.Video{}, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, videoID)
	}

	i := p.indexOf(videoID)
	if i < 0 {
		return models.Video{}, fmt.Errorf("%w: %s", shared.ErrNotInPlaylist, videoID)
	}

	p.Videos = slices.Delete(p.Videos, i, i+1)
	return video, nil
}

// Clear empties the playlist but keeps it.
func (s *Store) Clear(name string) error {
	p, err := s.lookup(name)
	if err != nil {
		return err
	}
	p.Videos = nil
	return nil
}

// Delete removes the playlist entirely.
func (s *Store) Delete(name string) error {
	key := Key(name)
	if _, ok := s.playlists[key]; !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, name)
	}
	delete(s.playlists, key)
	return nil
}

// Show returns the playlist with its videos in insertion order. An empty playlist is not an error.
func (s *Store) Show(name string) (*Playlist, error) {
	p, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return p.clone(), nil
}

// ListAll returns every playlist ordered by key.
func (s *Store) ListAll() []*Playlist {
	keys := slices.Sorted(maps.Keys(s.playlists))

	out := make([]*Playlist, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.playlists[key].clone())
	}
	return out
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	return len(s.playlists)
}

func (s *Store) lookup(name string) (*Playlist, error) {
	p, ok := s.playlists[Key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, name)
	}
	return p, nil
}
