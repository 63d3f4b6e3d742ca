package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytplayer/internal/console"
	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/player"
)

// Model represents the TUI application state.
type Model struct {
	catalog models.Catalog
	player  *player.Controller
	logger  *log.Logger
	width   int
	height  int
	videos  list.Model
	last    string
	failed  bool
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model over catalog. A nil logger discards logs.
func NewModel(catalog models.Catalog, controller *player.Controller, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	videos := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	videos.Title = "Library"
	videos.SetShowHelp(false)

	return &Model{
		catalog: catalog,
		player:  controller,
		logger:  logger,
		videos:  videos,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init loads the catalog into the list.
func (m *Model) Init() tea.Cmd {
	return m.loadCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.videos.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case Msg:
		switch msg.kind {
		case MsgCatalogLoaded:
			videos, _ := msg.data.([]models.Video)
			return m, m.videos.SetItems(videoItems(videos))
		case MsgPlayback:
			result, _ := msg.data.(playbackResult)
			m.recordPlayback(result)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.videos, cmd = m.videos.Update(msg)
	return m, cmd
}

// View renders the library, the player status and the result of the last action.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.videos.View())
	b.WriteString("\n\n")
	b.WriteString(styles.Status(m.player.Status()))
	b.WriteString("\n")

	if m.last != "" {
		if m.failed {
			b.WriteString(styles.err.Render(m.last))
		} else {
			b.WriteString(m.last)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.videos.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.videos, cmd = m.videos.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.play):
		selected, ok := m.videos.SelectedItem().(videoItem)
		if !ok {
			return m, nil
		}
		notices, err := m.player.Play(selected.video.ID)
		return m, report("play video", notices, err)
	case key.Matches(msg, m.keys.pause):
		if m.player.Status().State == player.Paused {
			notices, err := m.player.Resume()
			return m, report("continue video", notices, err)
		}
		notices, err := m.player.Pause()
		return m, report("pause video", notices, err)
	case key.Matches(msg, m.keys.stop):
		notices, err := m.player.Stop()
		return m, report("stop video", notices, err)
	case key.Matches(msg, m.keys.random):
		notices, err := m.player.PlayRandom()
		return m, report("play video", notices, err)
	}

	var cmd tea.Cmd
	m.videos, cmd = m.videos.Update(msg)
	return m, cmd
}

func (m *Model) recordPlayback(result playbackResult) {
	if result.err != nil {
		m.logger.Warn("playback failed", "action", result.action, "error", result.err)
		m.last = fmt.Sprintf("Cannot %s: %s", result.action, console.Reason(result.err))
		m.failed = true
		return
	}

	lines := make([]string, len(result.notices))
	for i, n := range result.notices {
		lines[i] = n.String()
	}
	m.logger.Debug("playback", "action", result.action, "notices", lines)
	m.last = strings.Join(lines, " • ")
	m.failed = false
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg(m.catalog.All())
	}
}

// report delivers the outcome of a playback operation that already ran in Update.
func report(action string, notices []player.Notice, err error) tea.Cmd {
	return func() tea.Msg {
		return playbackMsg(action, notices, err)
	}
}
