// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// replCommand starts the interactive console. It is also the root action.
func replCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Start the interactive video console (default)",
		Action: r.REPL,
	}
}

// videosCommand lists the catalog
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"ls"},
		Usage:   "List all videos in the library",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "count",
				Usage: "Only print the number of videos",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Videos,
	}
}

// searchCommand searches the catalog without starting the console
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search videos by title, or by tag with --tag",
		ArgsUsage: "<term>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Match tags exactly instead of title substrings",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Search,
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config.toml with the default settings",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database, run migrations and seed the video catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Seed from a videos.txt style file instead of the built-in catalog",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand launches the terminal player
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Interactive terminal player",
		Action: r.TUI,
	}
}
