package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Catalog.Source != CatalogEmbedded {
			t.Errorf("expected catalog source %s, got %s", CatalogEmbedded, config.Catalog.Source)
		}

		if config.Database.Path != "./ytplayer.db" {
			t.Errorf("expected database path ./ytplayer.db, got %s", config.Database.Path)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}

		if config.Console.Prompt != "YT> " {
			t.Errorf("expected prompt %q, got %q", "YT> ", config.Console.Prompt)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[catalog]
source = "file"
path = "/srv/videos.txt"

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Catalog.Source != CatalogFile {
			t.Errorf("expected catalog source file, got %s", config.Catalog.Source)
		}

		if config.Catalog.Path != "/srv/videos.txt" {
			t.Errorf("expected catalog path /srv/videos.txt, got %s", config.Catalog.Path)
		}

		if config.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Log.Level)
		}

		if config.Console.Prompt != "YT> " {
			t.Errorf("expected missing keys to keep defaults, got prompt %q", config.Console.Prompt)
		}
	})

	t.Run("LoadConfig with missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("LoadConfig with invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[catalog\nsource ="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv("YTPLAYER_CATALOG_SOURCE", "sqlite")
		t.Setenv("YTPLAYER_DATABASE_PATH", "/tmp/env.db")
		t.Setenv("YTPLAYER_DATABASE_MAX_OPEN_CONNS", "4")
		t.Setenv("YTPLAYER_CONSOLE_PROMPT", "> ")

		config := DefaultConfig()
		if err := ApplyEnv(config); err != nil {
			t.Fatalf("failed to apply env: %v", err)
		}

		if config.Catalog.Source != CatalogSQLite {
			t.Errorf("expected catalog source sqlite, got %s", config.Catalog.Source)
		}
		if config.Database.Path != "/tmp/env.db" {
			t.Errorf("expected database path /tmp/env.db, got %s", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 4 {
			t.Errorf("expected max open conns 4, got %d", config.Database.MaxOpenConns)
		}
		if config.Console.Prompt != "> " {
			t.Errorf("expected prompt %q, got %q", "> ", config.Console.Prompt)
		}
		if config.Log.Level != "info" {
			t.Errorf("expected unset variables to keep defaults, got log level %s", config.Log.Level)
		}
	})

	t.Run("ApplyEnv with bad integer", func(t *testing.T) {
		t.Setenv("YTPLAYER_DATABASE_MAX_IDLE_CONNS", "many")

		err := ApplyEnv(DefaultConfig())
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name    string
			mutate  func(*Config)
			wantErr bool
		}{
			{name: "file source with path", mutate: func(c *Config) { c.Catalog.Source = CatalogFile }},
			{name: "file source without path", mutate: func(c *Config) { c.Catalog.Source = CatalogFile; c.Catalog.Path = "" }, wantErr: true},
			{name: "sqlite source without database", mutate: func(c *Config) { c.Catalog.Source = CatalogSQLite; c.Database.Path = "" }, wantErr: true},
			{name: "unknown source", mutate: func(c *Config) { c.Catalog.Source = "ftp" }, wantErr: true},
			{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)

				err := config.Validate()
				if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				if !tt.wantErr && err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			})
		}
	})
}
