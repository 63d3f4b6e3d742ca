package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/ytplayer/internal/shared"
	tu "github.com/desertthunder/ytplayer/internal/testing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/urfave/cli/v3"
)

func newTestRunner(input string) (*Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Logger: shared.NewLogger(&bytes.Buffer{}),
		Output: output,
		Input:  strings.NewReader(input),
		Random: tu.NewScriptedRandom(0),
	})
	return runner, output
}

// runApp runs args through the same command tree main builds.
func runApp(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:     "ytplayer",
		Action:   r.REPL,
		Commands: r.register(),
		Writer:   r.output,
	}
	return app.Run(context.Background(), append([]string{"ytplayer"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			input := strings.NewReader("")

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Input:  input,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.input != input {
				t.Error("expected input to be set")
			}
		})

		t.Run("with nil options uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
			if runner.input != os.Stdin {
				t.Error("expected input to default to os.Stdin")
			}
			if runner.metrics == nil {
				t.Error("expected metrics recorder to be set")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})
}

func TestREPL(t *testing.T) {
	t.Run("search, select and playlist session", func(t *testing.T) {
		input := strings.Join([]string{
			"search_videos cat",
			"1",
			"SHOW_PLAYING",
			"CREATE_PLAYLIST My List",
			"add_to_playlist my list amazing_cats_video_id",
			"ADD_TO_PLAYLIST MY LIST amazing_cats_video_id",
			"SHOW_PLAYLIST My List",
			"",
			"DANCE",
			"PLAY",
			"EXIT",
			"NUMBER_OF_VIDEOS",
		}, "\n")
		runner, output := newTestRunner(input)

		if err := runApp(t, runner); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := welcome + strings.Join([]string{
			"Here are the results for cat:",
			"  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
			"  2) Another Cat Video (another_cat_video_id) [#cat #animal]",
			"Would you like to play any of the above? If yes, specify the number of the video.",
			"If your answer is not a valid number, we will assume it's a no.",
			"Playing video: Amazing Cats",
			"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal]",
			"Successfully created new playlist: My List",
			"Added video to my list: Amazing Cats",
			"Cannot add video to MY LIST: Video already added",
			"Showing playlist: My List",
			"  Amazing Cats (amazing_cats_video_id) [#cat #animal]",
			"Please enter a valid command, type HELP for a list of available commands.",
			"Usage: PLAY <video_id>",
		}, "\n") + "\n" + farewell

		if got := output.String(); got != want {
			t.Errorf("unexpected transcript\nwant:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("end of input after a search is a no", func(t *testing.T) {
		runner, output := newTestRunner("SEARCH_VIDEOS_TAG #google")

		if err := runApp(t, runner, "repl"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(output.String(), "Playing video") {
			t.Errorf("expected nothing to play, got %s", output.String())
		}
		if !strings.HasSuffix(output.String(), farewell) {
			t.Error("expected farewell at end of input")
		}
	})

	t.Run("counts commands", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		runner := NewRunner(RunnerOpts{
			Logger:   shared.NewLogger(&bytes.Buffer{}),
			Output:   &bytes.Buffer{},
			Input:    strings.NewReader("PLAY_RANDOM\nSTOP\nSTOP\n"),
			Random:   tu.NewScriptedRandom(0),
			Registry: registry,
		})

		if err := runApp(t, runner); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := testutil.ToFloat64(runner.metrics.CommandsTotal.WithLabelValues("STOP", "ok")); got != 1 {
			t.Errorf("expected 1 successful STOP, got %v", got)
		}
		if got := testutil.ToFloat64(runner.metrics.CommandsTotal.WithLabelValues("STOP", "invalid_state")); got != 1 {
			t.Errorf("expected 1 failed STOP, got %v", got)
		}
		if got := testutil.ToFloat64(runner.metrics.PlaybackStarts); got != 1 {
			t.Errorf("expected 1 playback start, got %v", got)
		}
	})

	t.Run("output failure aborts", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{
			Logger: shared.NewLogger(&bytes.Buffer{}),
			Output: &tu.FWriter{},
			Input:  strings.NewReader("HELP\n"),
		})

		if err := runner.REPL(context.Background(), &cli.Command{}); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestVideosAndSearch(t *testing.T) {
	t.Run("videos --count", func(t *testing.T) {
		runner, output := newTestRunner("")

		if err := runApp(t, runner, "videos", "--count"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "5 videos in the library\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("videos lists sorted by title", func(t *testing.T) {
		runner, output := newTestRunner("")

		if err := runApp(t, runner, "videos"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		lines := strings.Split(strings.TrimSpace(output.String()), "\n")
		if len(lines) != 6 {
			t.Fatalf("expected header and 5 videos, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[1], "  Amazing Cats") {
			t.Errorf("expected Amazing Cats first, got %q", lines[1])
		}
	})

	t.Run("search --tag", func(t *testing.T) {
		runner, output := newTestRunner("")

		if err := runApp(t, runner, "search", "--tag", "#DOG"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := "Here are the results for #DOG:\n  1) Funny Dogs (funny_dogs_video_id) [#dog #animal]\n"
		if output.String() != want {
			t.Errorf("expected %q, got %q", want, output.String())
		}
	})

	t.Run("search --json", func(t *testing.T) {
		runner, output := newTestRunner("")

		if err := runApp(t, runner, "search", "--json", "google"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), `"id":"life_at_google_video_id"`) {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("search without a term", func(t *testing.T) {
		runner, _ := newTestRunner("")

		if err := runApp(t, runner, "search"); err == nil {
			t.Error("expected missing argument error")
		}
	})
}

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "ytplayer.db")
	configPath := filepath.Join(dir, "config.toml")

	config := shared.DefaultConfig()
	config.Database.Path = dbPath

	t.Run("config", func(t *testing.T) {
		runner, _ := newTestRunner("")

		if err := runApp(t, runner, "setup", "config", "--config", configPath); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		tu.AssertFileExists(t, configPath)

		if err := runApp(t, runner, "setup", "config", "--config", configPath); err == nil {
			t.Error("expected error when config already exists")
		}
	})

	t.Run("database seeds the catalog", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(&bytes.Buffer{}), Output: output})

		if err := runApp(t, runner, "setup", "database", "--config", filepath.Join(dir, "missing.toml")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasPrefix(output.String(), "Seeded 5 of 5 videos") {
			t.Errorf("unexpected output %q", output.String())
		}

		output.Reset()
		if err := runApp(t, runner, "setup", "database", "--config", filepath.Join(dir, "missing.toml")); err != nil {
			t.Fatalf("expected no error on second run, got %v", err)
		}
		if !strings.HasPrefix(output.String(), "Seeded 0 of 5 videos") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("sqlite catalog source", func(t *testing.T) {
		sqliteConfig := *config
		sqliteConfig.Catalog.Source = shared.CatalogSQLite

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Config: &sqliteConfig, Logger: shared.NewLogger(&bytes.Buffer{}), Output: output})

		if err := runApp(t, runner, "videos", "--count"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "5 videos in the library\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("file catalog source", func(t *testing.T) {
		catalogPath := filepath.Join(dir, "videos.txt")
		tu.MustWriteFile(t, catalogPath, "Only video | only_id | #solo\n")

		fileConfig := *config
		fileConfig.Catalog.Source = shared.CatalogFile
		fileConfig.Catalog.Path = catalogPath

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Config: &fileConfig, Logger: shared.NewLogger(&bytes.Buffer{}), Output: output})

		if err := runApp(t, runner, "videos", "--count"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "1 videos in the library\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})
}
