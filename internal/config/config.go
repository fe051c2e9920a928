// Package config assembles service configuration from the environment.
// Every variable carries the QUESTGEN_ prefix.
package config

import (
	"os"
	"strconv"

	"questgen/internal/llm"
	"questgen/internal/store"
)

// Config is the full service configuration.
type Config struct {
	// Env selects logger behavior: "development" or "production".
	Env string

	// HTTPAddr is the listen address for the HTTP server.
	HTTPAddr string

	// ContentDir is the root of the chapter content tree.
	ContentDir string

	// ArtifactDir receives generated question files.
	ArtifactDir string

	// DBPath is the sqlite history database location.
	DBPath string

	// Workers bounds concurrent type pipelines.
	Workers int

	LLM llm.Config
}

// FromEnv builds a Config from environment variables with defaults for
// anything unset.
func FromEnv() (Config, error) {
	cfg := Config{
		Env:         envOr("QUESTGEN_ENV", "production"),
		HTTPAddr:    envOr("QUESTGEN_HTTP_ADDR", ":8080"),
		ContentDir:  envOr("QUESTGEN_CONTENT_DIR", "./content"),
		ArtifactDir: envOr("QUESTGEN_ARTIFACT_DIR", "./output"),
		Workers:     envIntOr("QUESTGEN_WORKERS", 3),
		LLM:         llm.ConfigFromEnv(),
	}
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return Config{}, err
	}
	cfg.DBPath = dbPath
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
