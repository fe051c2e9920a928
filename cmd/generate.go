package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questgen/internal/config"
	"questgen/internal/questiongen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question bank for a chapter",
	Long:  "Generate questions for one chapter and print the service response as JSON. Artifacts are written to the configured output directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := newLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx := cmd.Context()
		svc, cleanup, err := buildService(ctx, cmd, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		contentID, _ := cmd.Flags().GetString("content-id")
		chapter, _ := cmd.Flags().GetString("chapter")
		total, _ := cmd.Flags().GetInt("total")
		objectives, _ := cmd.Flags().GetStringSlice("objective")

		req := questiongen.GenerationRequest{
			ContentID:          contentID,
			ChapterName:        chapter,
			TotalQuestions:     total,
			LearningObjectives: objectives,
		}

		resp := svc.Generate(ctx, req)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
		if resp.Status != questiongen.StatusSuccess {
			return fmt.Errorf("generation failed: %s", resp.Message)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("content-id", "", "Book or content identifier")
	generateCmd.Flags().String("chapter", "", "Chapter name")
	generateCmd.Flags().Int("total", 10, "Total number of questions")
	generateCmd.Flags().StringSlice("objective", nil, "Learning objective (repeatable)")
	generateCmd.MarkFlagRequired("content-id")
	generateCmd.MarkFlagRequired("chapter")
}
