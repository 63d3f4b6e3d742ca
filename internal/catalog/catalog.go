package catalog

import (
	"fmt"
	"slices"

	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/shared"
)

var _ models.Catalog = (*Memory)(nil)

// Memory is an immutable in-memory [models.Catalog].
type Memory struct {
	videos []models.Video
	byID   map[string]int
}

// New builds a catalog from videos, preserving their order.
//
// Returns [shared.ErrDuplicateID] if two videos share an id.
func New(videos ...models.Video) (*Memory, error) {
	c := &Memory{
		videos: make([]models.Video, 0, len(videos)),
		byID:   make(map[string]int, len(videos)),
	}

	for _, v := range videos {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("invalid video: %w", err)
		}
		if _, ok := c.byID[v.ID]; ok {
			return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateID, v.ID)
		}
		c.byID[v.ID] = len(c.videos)
		c.videos = append(c.videos, models.NewVideo(v.ID, v.Title, v.Tags...))
	}

	return c, nil
}

// All returns a copy of every video in catalog order.
func (c *Memory) All() []models.Video {
	return slices.Clone(c.videos)
}

// Get looks up a video by id.
func (c *Memory) Get(id string) (models.Video, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Video{}, false
	}
	return c.videos[i], true
}

// Len returns the number of videos.
func (c *Memory) Len() int {
	return len(c.videos)
}
