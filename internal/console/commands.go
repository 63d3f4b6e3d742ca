package console

import "strings"

// Command names accepted by the REPL.
const (
	CmdNumberOfVideos     = "NUMBER_OF_VIDEOS"
	CmdShowAllVideos      = "SHOW_ALL_VIDEOS"
	CmdPlay               = "PLAY"
	CmdPlayRandom         = "PLAY_RANDOM"
	CmdStop               = "STOP"
	CmdPause              = "PAUSE"
	CmdContinue           = "CONTINUE"
	CmdShowPlaying        = "SHOW_PLAYING"
	CmdCreatePlaylist     = "CREATE_PLAYLIST"
	CmdAddToPlaylist      = "ADD_TO_PLAYLIST"
	CmdRemoveFromPlaylist = "REMOVE_FROM_PLAYLIST"
	CmdClearPlaylist      = "CLEAR_PLAYLIST"
	CmdDeletePlaylist     = "DELETE_PLAYLIST"
	CmdShowPlaylist       = "SHOW_PLAYLIST"
	CmdShowAllPlaylists   = "SHOW_ALL_PLAYLISTS"
	CmdExportPlaylist     = "EXPORT_PLAYLIST"
	CmdSearchVideos       = "SEARCH_VIDEOS"
	CmdSearchVideosTag    = "SEARCH_VIDEOS_TAG"
	CmdHelp               = "HELP"
	CmdExit               = "EXIT"
)

// Arity describes how a command's arguments are split.
type Arity int

const (
	NoArgs    Arity = iota // Arguments are ignored
	OneArg                 // All tokens joined with spaces form one argument
	NameAndID              // Last token is a video id, the tokens before it form a playlist name
)

// CommandSpec documents one REPL command.
type CommandSpec struct {
	Name  string
	Args  string
	Arity Arity
	Usage string
}

// Commands lists every REPL command in help order.
var Commands = []CommandSpec{
	{Name: CmdNumberOfVideos, Usage: "Shows how many videos are in the library."},
	{Name: CmdShowAllVideos, Usage: "Lists all videos from the library."},
	{Name: CmdPlay, Args: "<video_id>", Arity: OneArg, Usage: "Plays specified video."},
	{Name: CmdPlayRandom, Usage: "Plays a random video from the library."},
	{Name: CmdStop, Usage: "Stop the current video."},
	{Name: CmdPause, Usage: "Pause the current video."},
	{Name: CmdContinue, Usage: "Resume the current paused video."},
	{Name: CmdShowPlaying, Usage: "Displays the title, id and paused status of the video that is currently playing (or paused)."},
	{Name: CmdCreatePlaylist, Args: "<playlist_name>", Arity: OneArg, Usage: "Creates a new (empty) playlist with the provided name."},
	{Name: CmdAddToPlaylist, Args: "<playlist_name> <video_id>", Arity: NameAndID, Usage: "Adds the requested video to the playlist."},
	{Name: CmdRemoveFromPlaylist, Args: "<playlist_name> <video_id>", Arity: NameAndID, Usage: "Removes the specified video from the specified playlist."},
	{Name: CmdClearPlaylist, Args: "<playlist_name>", Arity: OneArg, Usage: "Removes all videos from the playlist."},
	{Name: CmdDeletePlaylist, Args: "<playlist_name>", Arity: OneArg, Usage: "Deletes the playlist."},
	{Name: CmdShowPlaylist, Args: "<playlist_name>", Arity: OneArg, Usage: "List all the videos in this playlist."},
	{Name: CmdShowAllPlaylists, Usage: "Display all the available playlists."},
	{Name: CmdExportPlaylist, Args: "<playlist_name>", Arity: OneArg, Usage: "Prints the playlist as CSV."},
	{Name: CmdSearchVideos, Args: "<search_term>", Arity: OneArg, Usage: "Display all the videos whose titles contain the search_term."},
	{Name: CmdSearchVideosTag, Args: "<tag_name>", Arity: OneArg, Usage: "Display all videos whose tags contains the provided tag."},
	{Name: CmdHelp, Usage: "Displays help."},
	{Name: CmdExit, Usage: "Terminates the program execution."},
}

// Lookup finds a command by name, ignoring case.
func Lookup(name string) (CommandSpec, bool) {
	for _, spec := range Commands {
		if strings.EqualFold(spec.Name, name) {
			return spec, true
		}
	}
	return CommandSpec{}, false
}

// SplitArgs applies the spec's arity to raw tokens. ok is false when required arguments are missing.
func (s CommandSpec) SplitArgs(tokens []string) (args []string, ok bool) {
	switch s.Arity {
	case OneArg:
		if len(tokens) == 0 {
			return nil, false
		}
		return []string{strings.Join(tokens, " ")}, true
	case NameAndID:
		if len(tokens) < 2 {
			return nil, false
		}
		last := len(tokens) - 1
		return []string{strings.Join(tokens[:last], " "), tokens[last]}, true
	default:
		return nil, true
	}
}

// HelpLine renders the spec as it appears in HELP output.
func (s CommandSpec) HelpLine() string {
	if s.Args == "" {
		return s.Name + " - " + s.Usage
	}
	return s.Name + " " + s.Args + " - " + s.Usage
}
