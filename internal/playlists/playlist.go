// Package playlists owns the named, case-insensitive playlists of a console session.
package playlists

import (
	"slices"
	"strings"

	"github.com/desertthunder/ytplayer/internal/models"
)

// Key returns the lookup form of a playlist name.
func Key(name string) string {
	return strings.ToLower(name)
}

// Playlist is an ordered collection of videos with no repeated ids.
type Playlist struct {
	Name   string         // Display form, as given at creation
	Key    string         // Lowercased Name
	Videos []models.Video // Insertion order
}

func newPlaylist(name string) *Playlist {
	return &Playlist{Name: name, Key: Key(name)}
}

// Contains reports whether a video with id is in the playlist.
func (p *Playlist) Contains(id string) bool {
	return p.indexOf(id) >= 0
}

// Len returns the number of videos.
func (p *Playlist) Len() int {
	return len(p.Videos)
}

func (p *Playlist) indexOf(id string) int {
	return slices.IndexFunc(p.Videos, func(v models.Video) bool { return v.ID == id })
}

func (p *Playlist) clone() *Playlist {
	return &Playlist{Name: p.Name, Key: p.Key, Videos: slices.Clone(p.Videos)}
}
