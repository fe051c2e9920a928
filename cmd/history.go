package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"questgen/internal/config"
	"questgen/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		recs, err := s.HistoryRepo().RecentGenerations(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println("No generation history found.")
			return nil
		}

		fmt.Printf("%-19s  %-36s  %-24s  %5s  %-7s  %8s  %5s\n",
			"Timestamp", "Session", "Chapter", "Total", "Status", "Ms", "Files")
		fmt.Println(strings.Repeat("─", 116))

		for _, r := range recs {
			chapter := r.ChapterName
			if len(chapter) > 24 {
				chapter = chapter[:24]
			}
			fmt.Printf("%-19s  %-36s  %-24s  %5d  %-7s  %8d  %5d\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.SessionID,
				chapter,
				r.TotalQuestions,
				r.Status,
				r.DurationMs,
				len(r.FilesGenerated),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of records to show")
}
