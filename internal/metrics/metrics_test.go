package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	t.Run("collectors exist", func(t *testing.T) {
		r := New(nil)

		tests := []struct {
			name   string
			metric interface{}
		}{
			{"CommandsTotal", r.CommandsTotal},
			{"PlaybackStarts", r.PlaybackStarts},
			{"Playlists", r.Playlists},
		}

		for _, tt := range tests {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		}
	})

	t.Run("separate registries do not collide", func(t *testing.T) {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})

	t.Run("ObserveCommand", func(t *testing.T) {
		r := New(nil)
		r.ObserveCommand("PLAY", "ok")
		r.ObserveCommand("PLAY", "ok")
		r.ObserveCommand("PLAY", "not_found")

		if got := testutil.ToFloat64(r.CommandsTotal.WithLabelValues("PLAY", "ok")); got != 2 {
			t.Errorf("expected 2 ok plays, got %v", got)
		}
		if got := testutil.ToFloat64(r.CommandsTotal.WithLabelValues("PLAY", "not_found")); got != 1 {
			t.Errorf("expected 1 failed play, got %v", got)
		}
	})

	t.Run("ObservePlayback and ObservePlaylists", func(t *testing.T) {
		r := New(nil)
		r.ObservePlayback()
		r.ObservePlaylists(3)
		r.ObservePlaylists(2)

		if got := testutil.ToFloat64(r.PlaybackStarts); got != 1 {
			t.Errorf("expected 1 playback start, got %v", got)
		}
		if got := testutil.ToFloat64(r.Playlists); got != 2 {
			t.Errorf("expected playlists gauge 2, got %v", got)
		}
	})

	t.Run("Summary", func(t *testing.T) {
		r := New(nil)
		r.ObserveCommand("STOP", "invalid_state")
		r.ObserveCommand("PLAY", "ok")
		r.ObservePlayback()

		summary, err := r.Summary()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summary) != 2 {
			t.Errorf("expected only command counters in summary, got %v", summary)
		}
		if summary["STOP/invalid_state"] != 1 || summary["PLAY/ok"] != 1 {
			t.Errorf("unexpected summary %v", summary)
		}

		kv, err := r.SummaryKV()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(kv) != 4 || kv[0] != "PLAY/ok" || kv[2] != "STOP/invalid_state" {
			t.Errorf("expected sorted pairs, got %v", kv)
		}
	})
}
