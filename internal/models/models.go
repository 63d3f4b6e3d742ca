// package models defines the data model for the playback console
package models

import (
	"fmt"
	"slices"
	"strings"
)

// Video is a catalog entry. Tags are kept exactly as stored.
type Video struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// NewVideo creates a [Video], copying tags so the caller's slice can't alias catalog state.
func NewVideo(id, title string, tags ...string) Video {
	return Video{ID: id, Title: title, Tags: slices.Clone(tags)}
}

// HasTag reports whether the video carries tag, compared case-insensitively.
func (v Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// String renders the display form: Title (id) [#tag1 #tag2]
func (v Video) String() string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// Validate checks that the video has the fields a catalog requires.
func (v Video) Validate() error {
	if strings.TrimSpace(v.ID) == "" {
		return fmt.Errorf("video id is required")
	}
	if strings.TrimSpace(v.Title) == "" {
		return fmt.Errorf("video %s: title is required", v.ID)
	}
	return nil
}

// Catalog defines read-only access to the set of known videos.
// Implementations must return a stable snapshot from All.
type Catalog interface {
	All() []Video                // All returns every video in catalog order
	Get(id string) (Video, bool) // Get looks up a video by id
}
