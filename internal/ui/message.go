package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/player"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgCatalogLoaded MsgKind = iota
	MsgPlayback
)

type playbackResult struct {
	action  string
	notices []player.Notice
	err     error
}

// catalogLoadedMsg is the constructor for [MsgCatalogLoaded]
func catalogLoadedMsg(videos []models.Video) Msg {
	return Msg{kind: MsgCatalogLoaded, data: videos}
}

// playbackMsg is the constructor for [MsgPlayback]
func playbackMsg(action string, notices []player.Notice, err error) Msg {
	return Msg{kind: MsgPlayback, data: playbackResult{action: action, notices: notices, err: err}}
}
