package player

import (
	"fmt"

	"github.com/desertthunder/ytplayer/internal/models"
)

// State is the playback state of a [Controller].
type State int

const (
	Stopped State = iota // No video loaded
	Playing              // Current video is playing
	Paused               // Current video is paused
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// NoticeKind enumerates the notifications a [Controller] emits.
type NoticeKind int

const (
	NoticeStopping NoticeKind = iota
	NoticePlaying
	NoticePausing
	NoticeAlreadyPaused
	NoticeContinuing
)

// Notice reports one visible effect of an operation on a specific video.
type Notice struct {
	Kind  NoticeKind
	Video models.Video
}

// String renders the notice the way the console prints it.
func (n Notice) String() string {
	switch n.Kind {
	case NoticeStopping:
		return "Stopping video: " + n.Video.Title
	case NoticePlaying:
		return "Playing video: " + n.Video.Title
	case NoticePausing:
		return "Pausing video: " + n.Video.Title
	case NoticeAlreadyPaused:
		return "Video already paused: " + n.Video.Title
	case NoticeContinuing:
		return "Continuing video: " + n.Video.Title
	default:
		return fmt.Sprintf("unknown notice %d: %s", n.Kind, n.Video.Title)
	}
}

// Status is a snapshot of a [Controller]. Video is nil iff State is [Stopped].
type Status struct {
	State State
	Video *models.Video
}

// String describes the status using the video title.
func (s Status) String() string {
	switch {
	case s.Video == nil:
		return "no video playing"
	case s.State == Paused:
		return "currently playing: " + s.Video.Title + " - PAUSED"
	default:
		return "currently playing: " + s.Video.Title
	}
}
