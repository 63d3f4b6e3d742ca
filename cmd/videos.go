package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/ytplayer/internal/formatter"
	"github.com/desertthunder/ytplayer/internal/search"
	"github.com/desertthunder/ytplayer/internal/shared"
	"github.com/urfave/cli/v3"
)

// Videos prints the catalog sorted by title.
func (r *Runner) Videos(ctx context.Context, cmd *cli.Command) error {
	videos, err := r.openCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	all := videos.All()
	search.SortByTitle(all)

	switch {
	case cmd.Bool("count"):
		return r.writePlain("%d videos in the library\n", len(all))
	case cmd.Bool("json"):
		return r.writeJSON(all, cmd.Bool("pretty"))
	default:
		return r.writeBytes(formatter.VideoList("Here's a list of all available videos:", all))
	}
}

// Search prints the videos matching a title term or, with --tag, a tag.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	term := strings.Join(cmd.Args().Slice(), " ")
	if term == "" {
		return fmt.Errorf("%w: search term", shared.ErrMissingArgument)
	}

	videos, err := r.openCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var results search.Results
	if cmd.Bool("tag") {
		results = search.ByTag(videos, term)
	} else {
		results = search.ByTitle(videos, term)
	}
	r.logger.Debug("search", "term", term, "tag", cmd.Bool("tag"), "results", len(results))

	if cmd.Bool("json") {
		return r.writeJSON(results.Videos(), cmd.Bool("pretty"))
	}
	return r.writeBytes(formatter.SearchResults(term, results))
}
