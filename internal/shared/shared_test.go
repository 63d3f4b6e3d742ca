package shared

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    log.Level
		wantErr bool
	}{
		{name: "empty defaults to info", input: "", want: log.InfoLevel},
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "mixed case", input: "WaRn", want: log.WarnLevel},
		{name: "padded", input: "  error ", want: log.ErrorLevel},
		{name: "unknown", input: "chatty", want: log.InfoLevel, wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Error("expected distinct ids")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("expected a valid uuid, got %q: %v", a, err)
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ytplayer.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create file logger: %v", err)
	}
	logger.Info("hello")
}

func TestErrorKinds(t *testing.T) {
	tc := []struct {
		err  error
		kind error
	}{
		{ErrVideoNotFound, ErrNotFound},
		{ErrPlaylistNotFound, ErrNotFound},
		{ErrCatalogEmpty, ErrNotFound},
		{ErrPlaylistExists, ErrAlreadyExists},
		{ErrNothingPlaying, ErrInvalidState},
		{ErrNotPaused, ErrInvalidState},
	}

	for _, tt := range tc {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("expected %v to be a %v", tt.err, tt.kind)
			}
		})
	}

	if errors.Is(ErrVideoNotFound, ErrPlaylistNotFound) {
		t.Error("video and playlist not-found errors must be distinguishable")
	}
	if errors.Is(ErrNotInPlaylist, ErrNotFound) {
		t.Error("not-in-playlist is not a not-found error")
	}
}
