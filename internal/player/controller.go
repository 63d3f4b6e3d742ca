package player

import (
	"fmt"
	"math/rand/v2"

	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/shared"
)

// Randomizer picks an index in [0, n). n is always positive.
type Randomizer interface {
	IntN(n int) int
}

// RandomizerFunc adapts a function to [Randomizer].
type RandomizerFunc func(n int) int

func (f RandomizerFunc) IntN(n int) int { return f(n) }

// Controller owns the playback state for a single console. It is not safe for concurrent use.
type Controller struct {
	catalog models.Catalog
	random  Randomizer
	state   State
	current *models.Video
}

// NewController creates a stopped [Controller]. A nil random falls back to math/rand/v2.
func NewController(catalog models.Catalog, random Randomizer) *Controller {
	if random == nil {
		random = RandomizerFunc(rand.IntN)
	}
	return &Controller{catalog: catalog, random: random, state: Stopped}
}

// Play starts videoID, stopping whatever was loaded before.
func (c *Controller) Play(videoID string) ([]Notice, error) {
	video, ok := c.catalog.Get(videoID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, videoID)
	}

	var notices []Notice
	if c.state != Stopped {
		notices = append(notices, Notice{Kind: NoticeStopping, Video: *c.current})
	}
	return append(notices, c.start(video)), nil
}

// PlayRandom starts a video picked uniformly from the whole catalog.
//
// Only a playing video gets a stopping notice; a paused one is replaced silently.
func (c *Controller) PlayRandom() ([]Notice, error) {
	videos := c.catalog.All()
	if len(videos) == 0 {
		return nil, shared.ErrCatalogEmpty
	}

	video := videos[c.random.IntN(len(videos))]

	var notices []Notice
	if c.state == Playing {
		notices = append(notices, Notice{Kind: NoticeStopping, Video: *c.current})
	}
	return append(notices, c.start(video)), nil
}

// Stop unloads the current video whether it is playing or paused.
func (c *Controller) Stop() ([]Notice, error) {
	if c.state == Stopped {
		return nil, shared.ErrNothingPlaying
	}

	notice := Notice{Kind: NoticeStopping, Video: *c.current}
	c.state = Stopped
	c.current = nil
	return []Notice{notice}, nil
}

// Pause pauses the current video. Pausing twice is reported, not an error.
func (c *Controller) Pause() ([]Notice, error) {
	switch c.state {
	case Stopped:
		return nil, shared.ErrNothingPlaying
	case Paused:
		return []Notice{{Kind: NoticeAlreadyPaused, Video: *c.current}}, nil
	}

	c.state = Paused
	return []Notice{{Kind: NoticePausing, Video: *c.current}}, nil
}

// Resume continues a paused video.
func (c *Controller) Resume() ([]Notice, error) {
	switch c.state {
	case Stopped:
		return nil, shared.ErrNothingPlaying
	case Playing:
		return nil, shared.ErrNotPaused
	}

	c.state = Playing
	return []Notice{{Kind: NoticeContinuing, Video: *c.current}}, nil
}

// Status returns the current state and video without changing anything.
func (c *Controller) Status() Status {
	if c.current == nil {
		return Status{State: c.state}
	}
	video := *c.current
	return Status{State: c.state, Video: &video}
}

func (c *Controller) start(video models.Video) Notice {
	c.state = Playing
	c.current = &video
	return Notice{Kind: NoticePlaying, Video: video}
}
