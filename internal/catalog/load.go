package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertthunder/ytplayer/internal/models"
	"github.com/desertthunder/ytplayer/internal/shared"
)

//go:embed videos.txt
var embeddedVideos []byte

// Source lists videos from a backing store.
type Source interface {
	List() ([]models.Video, error)
}

// Parse reads catalog lines of the form `title | id | #tag1, #tag2`.
//
// Blank lines are skipped and the tag column may be empty or missing.
func Parse(r io.Reader) ([]models.Video, error) {
	var videos []models.Video

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: expected 2 or 3 fields, got %d", shared.ErrMalformedLine, lineNo, len(fields))
		}

		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])
		if title == "" || id == "" {
			return nil, fmt.Errorf("%w: line %d: title and id are required", shared.ErrMalformedLine, lineNo)
		}

		var tags []string
		if len(fields) == 3 {
			for _, tag := range strings.Split(fields[2], ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					tags = append(tags, tag)
				}
			}
		}

		videos = append(videos, models.NewVideo(id, title, tags...))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return videos, nil
}

// Embedded returns the default catalog compiled into the binary.
func Embedded() (*Memory, error) {
	videos, err := Parse(bytes.NewReader(embeddedVideos))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return New(videos...)
}

// LoadFile builds a catalog from a text file in the [Parse] format.
func LoadFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	videos, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return New(videos...)
}

// FromSource snapshots every video from src into an immutable catalog.
func FromSource(src Source) (*Memory, error) {
	videos, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return New(videos...)
}
