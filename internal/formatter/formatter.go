// package formatter renders catalog, playback and playlist data as the plain-text reports the console prints
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/player"
	"github.com/desertthunder/ytplayer/internal/playlists"
	"github.com/desertthunder/ytplayer/internal/search"
)

const indent = "  "

// VideoList renders a header followed by one indented line per video, in the given order.
func VideoList(header string, videos []models.Video) []byte {
	var buf bytes.Buffer

	buf.WriteString(header + "\n")
	for _, v := range videos {
		buf.WriteString(indent + v.String() + "\n")
	}

	return buf.Bytes()
}

// Status renders a [player.Status] with the full video display form.
func Status(s player.Status) string {
	switch {
	case s.Video == nil:
		return "No video is currently playing"
	case s.State == player.Paused:
		return fmt.Sprintf("Currently playing: %s - PAUSED", s.Video)
	default:
		return fmt.Sprintf("Currently playing: %s", s.Video)
	}
}

// PlaylistText renders a playlist's videos under the name the user asked for.
func PlaylistText(name string, p *playlists.Playlist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Showing playlist: %s\n", name))
	if p.Len() == 0 {
		buf.WriteString(indent + "No videos here yet\n")
		return buf.Bytes()
	}

	for _, v := range p.Videos {
		buf.WriteString(indent + v.String() + "\n")
	}

	return buf.Bytes()
}

// PlaylistIndex renders the display names of all playlists, in the order given.
func PlaylistIndex(all []*playlists.Playlist) []byte {
	var buf bytes.Buffer

	if len(all) == 0 {
		buf.WriteString("No playlists exist yet\n")
		return buf.Bytes()
	}

	buf.WriteString("Showing all playlists:\n")
	for _, p := range all {
		buf.WriteString(fmt.Sprintf("%s%s (%s)\n", indent, p.Name, pluralize(p.Len(), "video")))
	}

	return buf.Bytes()
}

// SearchResults renders numbered matches for term, or the no-results line.
func SearchResults(term string, results search.Results) []byte {
	var buf bytes.Buffer

	if len(results) == 0 {
		buf.WriteString(fmt.Sprintf("No search results for %s\n", term))
		return buf.Bytes()
	}

	buf.WriteString(fmt.Sprintf("Here are the results for %s:\n", term))
	for _, r := range results {
		buf.WriteString(fmt.Sprintf("%s%d) %s\n", indent, r.Index, r.Video))
	}

	return buf.Bytes()
}

// PlaylistCSV converts a playlist to CSV with columns: Position, ID, Title, Tags
func PlaylistCSV(p *playlists.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Position", "ID", "Title", "Tags"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, v := range p.Videos {
		record := []string{fmt.Sprint(i + 1), v.ID, v.Title, strings.Join(v.Tags, " ")}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
