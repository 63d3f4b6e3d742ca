// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/ytplayer/internal/models"
)

// Fixture videos mirroring the catalog used throughout the package tests.
var (
	CatVideo     = models.NewVideo("cat_video_id", "Cat video", "#cat")
	DogVideo     = models.NewVideo("dog_video_id", "Dog video", "#dog")
	AmazingCats  = models.NewVideo("amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")
	FunnyDogs    = models.NewVideo("funny_dogs_video_id", "Funny Dogs", "#dog", "#animal")
	NothingVideo = models.NewVideo("nothing_video_id", "Video about nothing")
)

// StubCatalog is a map-backed [models.Catalog] test double.
type StubCatalog struct {
	videos []models.Video
}

var _ models.Catalog = (*StubCatalog)(nil)

// NewCatalog returns a [StubCatalog] holding videos in the given order.
func NewCatalog(videos ...models.Video) *StubCatalog {
	return &StubCatalog{videos: videos}
}

func (c *StubCatalog) All() []models.Video {
	out := make([]models.Video, len(c.videos))
	copy(out, c.videos)
	return out
}

func (c *StubCatalog) Get(id string) (models.Video, bool) {
	for _, v := range c.videos {
		if v.ID == id {
			return v, true
		}
	}
	return models.Video{}, false
}

// ScriptedRandom returns a fixed sequence of picks, cycling when exhausted, and records every n it was asked for.
type ScriptedRandom struct {
	picks []int
	calls []int
}

func NewScriptedRandom(picks ...int) *ScriptedRandom {
	return &ScriptedRandom{picks: picks}
}

func (s *ScriptedRandom) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.picks) == 0 {
		return 0
	}
	pick := s.picks[(len(s.calls)-1)%len(s.picks)]
	return pick % n
}

// Calls returns the n passed to each IntN call.
func (s *ScriptedRandom) Calls() []int {
	return s.calls
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
