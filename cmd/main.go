package main

import (
	"context"
	"os"

	"github.com/desertthunder/ytplayer/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		loaded, err := shared.LoadConfig("config.toml")
		if err != nil {
			logger.Fatalf("failed to load config.toml: %v", err)
		}
		config = loaded
	}

	if err := shared.ApplyEnv(config); err != nil {
		logger.Fatalf("failed to apply environment: %v", err)
	}
	if err := config.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	level, _ := shared.ParseLogLevel(config.Log.Level)
	shared.SetLogLevel(logger, level)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "ytplayer",
		Usage:    "Play videos, manage playlists and search a video library from the terminal",
		Version:  "0.1.0",
		Action:   runner.REPL,
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
