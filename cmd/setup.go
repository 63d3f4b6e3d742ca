package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/ytplayer/internal/catalog"
	"github.com/desertthunder/ytplayer/internal/repositories"
	"github.com/desertthunder/ytplayer/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the default configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", configPath)
	return r.writePlain("Config written to %s\n", configPath)
}

// SetupDatabase initializes the database, runs migrations and seeds the catalog.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using current settings", "error", err)
			config = r.config
		}
	} else {
		r.logger.Info("config file not found, using current settings", "path", configPath)
	}

	seed, err := catalog.Embedded()
	if path := cmd.String("catalog"); path != "" {
		seed, err = catalog.LoadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to load seed catalog: %w", err)
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	added, err := repositories.NewVideoRepository(db).Seed(seed.All())
	if err != nil {
		return fmt.Errorf("failed to seed videos: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return r.writePlain("Seeded %d of %d videos into %s\n", added, seed.Len(), config.Database.Path)
}
