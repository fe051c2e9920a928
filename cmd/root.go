package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"questgen/internal/artifact"
	"questgen/internal/config"
	"questgen/internal/content"
	"questgen/internal/llm"
	"questgen/internal/logging"
	"questgen/internal/questiongen"
	"questgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "questgen",
	Short: "Question bank generation service",
	Long:  "Questgen generates assessment questions (MCQ, true/false, fill-in-the-blank) from chapter content using an LLM.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUESTGEN_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUESTGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return cfg.DBPath, store.EnsureDir(cfg.DBPath)
}

// buildService wires the full generation stack from config. The returned
// cleanup closes the store.
func buildService(ctx context.Context, cmd *cobra.Command, cfg config.Config, log *zap.Logger) (*questiongen.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve db path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	cleanup := func() { _ = st.Close() }

	history := st.HistoryRepo()

	provider, err := llm.NewProvider(ctx, cfg.LLM, log, history)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("init LLM provider: %w", err)
	}

	contentStore, err := content.NewFSStore(cfg.ContentDir)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("init content store: %w", err)
	}

	sink, err := artifact.NewFSSink(cfg.ArtifactDir)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("init artifact sink: %w", err)
	}

	pipeline := questiongen.NewTypePipeline(provider, sink, log, cfg.LLM.MaxTokens)
	svc := questiongen.NewService(contentStore, pipeline, history, log, cfg.Workers)
	return svc, cleanup, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Env)
}
