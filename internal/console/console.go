package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytplayer/internal/formatter"
	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/player"
	"github.com/desertthunder/ytplayer/internal/playlists"
	"github.com/desertthunder/ytplayer/internal/search"
	"github.com/desertthunder/ytplayer/internal/shared"
)

// Outcome labels reported to an [Observer].
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeAlreadyExists = "already_exists"
	OutcomeInvalidState  = "invalid_state"
	OutcomeRejected      = "rejected"
	OutcomeError         = "error"
)

// Observer receives one call per executed command.
type Observer interface {
	ObserveCommand(command, outcome string)
	ObservePlayback()
	ObservePlaylists(n int)
}

type nopObserver struct{}

func (nopObserver) ObserveCommand(string, string) {}
func (nopObserver) ObservePlayback()              {}
func (nopObserver) ObservePlaylists(int)          {}

// Options contains the dependencies of a [Console].
type Options struct {
	Catalog  models.Catalog
	Random   player.Randomizer
	Output   io.Writer
	Logger   *log.Logger
	Observer Observer
}

// Console runs commands against a single player and playlist store.
type Console struct {
	catalog  models.Catalog
	player   *player.Controller
	store    *playlists.Store
	out      io.Writer
	logger   *log.Logger
	observer Observer
}

// New creates a [Console]. Output defaults to [os.Stdout] and logs are discarded unless a logger is given.
func New(opts Options) *Console {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	return &Console{
		catalog:  opts.Catalog,
		player:   player.NewController(opts.Catalog, opts.Random),
		store:    playlists.NewStore(opts.Catalog),
		out:      opts.Output,
		logger:   opts.Logger,
		observer: opts.Observer,
	}
}

// Status exposes the player state for callers that render it themselves.
func (c *Console) Status() player.Status {
	return c.player.Status()
}

// Outcome classifies err into an [Observer] label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, shared.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, shared.ErrAlreadyExists):
		return OutcomeAlreadyExists
	case errors.Is(err, shared.ErrInvalidState):
		return OutcomeInvalidState
	case errors.Is(err, shared.ErrAlreadyInPlaylist), errors.Is(err, shared.ErrNotInPlaylist):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

// Reason turns a domain error into the user-facing explanation.
func Reason(err error) string {
	switch {
	case errors.Is(err, shared.ErrVideoNotFound):
		return "Video does not exist"
	case errors.Is(err, shared.ErrPlaylistNotFound):
		return "Playlist does not exist"
	case errors.Is(err, shared.ErrPlaylistExists):
		return "A playlist with the same name already exists"
	case errors.Is(err, shared.ErrAlreadyInPlaylist):
		return "Video already added"
	case errors.Is(err, shared.ErrNotInPlaylist):
		return "Video is not in playlist"
	case errors.Is(err, shared.ErrNothingPlaying):
		return "No video is currently playing"
	case errors.Is(err, shared.ErrNotPaused):
		return "Video is not paused"
	case errors.Is(err, shared.ErrCatalogEmpty):
		return "No videos available"
	default:
		return err.Error()
	}
}

// NumberOfVideos reports the catalog size.
func (c *Console) NumberOfVideos() error {
	c.observe(CmdNumberOfVideos, nil)
	return c.writeln("%d videos in the library", len(c.catalog.All()))
}

// ShowAllVideos lists the catalog sorted by title.
func (c *Console) ShowAllVideos() error {
	videos := c.catalog.All()
	search.SortByTitle(videos)

	c.observe(CmdShowAllVideos, nil)
	return c.write(formatter.VideoList("Here's a list of all available videos:", videos))
}

// Play starts videoID.
func (c *Console) Play(videoID string) error {
	notices, err := c.player.Play(videoID)
	return c.playback(CmdPlay, "play video", notices, err)
}

// PlayRandom starts a random catalog video.
func (c *Console) PlayRandom() error {
	notices, err := c.player.PlayRandom()
	return c.playback(CmdPlayRandom, "play video", notices, err)
}

// Stop stops the current video.
func (c *Console) Stop() error {
	notices, err := c.player.Stop()
	return c.playback(CmdStop, "stop video", notices, err)
}

// Pause pauses the current video.
func (c *Console) Pause() error {
	notices, err := c.player.Pause()
	return c.playback(CmdPause, "pause video", notices, err)
}

// Continue resumes the paused video.
func (c *Console) Continue() error {
	notices, err := c.player.Resume()
	return c.playback(CmdContinue, "continue video", notices, err)
}

// ShowPlaying reports the current video and whether it is paused.
func (c *Console) ShowPlaying() error {
	c.observe(CmdShowPlaying, nil)
	return c.writeln("%s", formatter.Status(c.player.Status()))
}

// CreatePlaylist creates an empty playlist.
func (c *Console) CreatePlaylist(name string) error {
	if _, err := c.store.Create(name); err != nil {
		return c.fail(CmdCreatePlaylist, "create playlist", err)
	}

	c.observe(CmdCreatePlaylist, nil)
	return c.writeln("Successfully created new playlist: %s", name)
}

// AddToPlaylist appends videoID to the playlist.
func (c *Console) AddToPlaylist(name, videoID string) error {
	video, err := c.store.AddVideo(name, videoID)
	if err != nil {
		return c.fail(CmdAddToPlaylist, "add video to "+name, err)
	}

	c.observe(CmdAddToPlaylist, nil)
	return c.writeln("Added video to %s: %s", name, video.Title)
}

// RemoveFromPlaylist removes videoID from the playlist.
func (c *Console) RemoveFromPlaylist(name, videoID string) error {
	video, err := c.store.RemoveVideo(name, videoID)
	if err != nil {
		return c.fail(CmdRemoveFromPlaylist, "remove video from "+name, err)
	}

	c.observe(CmdRemoveFromPlaylist, nil)
	return c.writeln("Removed video from %s: %s", name, video.Title)
}

// ClearPlaylist removes every video from the playlist.
func (c *Console) ClearPlaylist(name string) error {
	if err := c.store.Clear(name); err != nil {
		return c.fail(CmdClearPlaylist, "clear playlist "+name, err)
	}

	c.observe(CmdClearPlaylist, nil)
	return c.writeln("Successfully removed all videos from %s", name)
}

// DeletePlaylist deletes the playlist.
func (c *Console) DeletePlaylist(name string) error {
	if err := c.store.Delete(name); err != nil {
		return c.fail(CmdDeletePlaylist, "delete playlist "+name, err)
	}

	c.observe(CmdDeletePlaylist, nil)
	return c.writeln("Deleted playlist: %s", name)
}

// ShowPlaylist lists the playlist's videos in insertion order.
func (c *Console) ShowPlaylist(name string) error {
	p, err := c.store.Show(name)
	if err != nil {
		return c.fail(CmdShowPlaylist, "show playlist "+name, err)
	}

	c.observe(CmdShowPlaylist, nil)
	return c.write(formatter.PlaylistText(name, p))
}

// ShowAllPlaylists lists every playlist ordered by name.
func (c *Console) ShowAllPlaylists() error {
	c.observe(CmdShowAllPlaylists, nil)
	return c.write(formatter.PlaylistIndex(c.store.ListAll()))
}

// ExportPlaylist prints the playlist as CSV.
func (c *Console) ExportPlaylist(name string) error {
	p, err := c.store.Show(name)
	if err != nil {
		return c.fail(CmdExportPlaylist, "export playlist "+name, err)
	}

	data, err := formatter.PlaylistCSV(p)
	if err != nil {
		c.observe(CmdExportPlaylist, err)
		return fmt.Errorf("failed to export playlist: %w", err)
	}

	c.observe(CmdExportPlaylist, nil)
	return c.write(data)
}

// SearchVideos prints videos whose title contains term and returns them for selection.
func (c *Console) SearchVideos(term string) (search.Results, error) {
	return c.search(CmdSearchVideos, term, search.ByTitle(c.catalog, term))
}

// SearchVideosTag prints videos tagged tag and returns them for selection.
func (c *Console) SearchVideosTag(tag string) (search.Results, error) {
	return c.search(CmdSearchVideosTag, tag, search.ByTag(c.catalog, tag))
}

// PlayResult plays the result the answer selects. Anything that isn't a valid number is taken as no.
func (c *Console) PlayResult(results search.Results, answer string) error {
	video, ok := results.Pick(answer)
	if !ok {
		c.logger.Debug("no search result selected", "answer", answer)
		return nil
	}
	return c.Play(video.ID)
}

// Help lists every command.
func (c *Console) Help() error {
	c.observe(CmdHelp, nil)

	if err := c.writeln("Available commands:"); err != nil {
		return err
	}
	for _, spec := range Commands {
		if err := c.writeln("    %s", spec.HelpLine()); err != nil {
			return err
		}
	}
	return nil
}

// Unknown reports a command name that isn't recognized.
func (c *Console) Unknown(name string) error {
	c.observe(name, errors.New("unknown command"))
	return c.writeln("Please enter a valid command, type HELP for a list of available commands.")
}

// Usage reports a command called without its required arguments.
func (c *Console) Usage(spec CommandSpec) error {
	c.observe(spec.Name, shared.ErrMissingArgument)
	return c.writeln("Usage: %s %s", spec.Name, spec.Args)
}

func (c *Console) search(command, term string, results search.Results) (search.Results, error) {
	c.observe(command, nil)
	c.logger.Debug("search", "command", command, "term", term, "results", len(results))

	if err := c.write(formatter.SearchResults(term, results)); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	if err := c.writeln("Would you like to play any of the above? If yes, specify the number of the video."); err != nil {
		return nil, err
	}
	if err := c.writeln("If your answer is not a valid number, we will assume it's a no."); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Console) playback(command, action string, notices []player.Notice, err error) error {
	if err != nil {
		return c.fail(command, action, err)
	}

	c.observe(command, nil)
	for _, n := range notices {
		if n.Kind == player.NoticePlaying {
			c.observer.ObservePlayback()
		}
		if err := c.writeln("%s", n); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) fail(command, action string, err error) error {
	c.observe(command, err)
	c.logger.Warn("command failed", "command", command, "error", err)
	return c.writeln("Cannot %s: %s", action, Reason(err))
}

func (c *Console) observe(command string, err error) {
	c.observer.ObserveCommand(command, Outcome(err))
	c.observer.ObservePlaylists(c.store.Len())
}

func (c *Console) write(p []byte) error {
	if _, err := c.out.Write(p); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (c *Console) writeln(format string, args ...any) error {
	return c.write([]byte(fmt.Sprintf(format, args...) + "\n"))
}
