package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/ytplayer/internal/player"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Status colors the player status by state: green while playing, orange while paused.
func (p *Palette) Status(s player.Status) string {
	switch s.State {
	case player.Playing:
		return p.ok.Render("▶ " + s.Video.String())
	case player.Paused:
		return p.warn.Render("⏸ " + s.Video.String() + " - PAUSED")
	default:
		return p.help.Render("■ No video is currently playing")
	}
}
