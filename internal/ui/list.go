package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/ytplayer/internal/models"
)

var _ list.Item = videoItem{}

// videoItem wraps [models.Video] to implement [list.Item].
type videoItem struct {
	video models.Video
}

// FilterValue includes tags so "/#cat" narrows the list the same way a tag search does.
func (i videoItem) FilterValue() string { return i.video.Title + " " + strings.Join(i.video.Tags, " ") }
func (i videoItem) Title() string       { return i.video.Title }
func (i videoItem) Description() string {
	if len(i.video.Tags) == 0 {
		return i.video.ID
	}
	return i.video.ID + " • " + strings.Join(i.video.Tags, " ")
}

func videoItems(videos []models.Video) []list.Item {
	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = videoItem{video: v}
	}
	return items
}
