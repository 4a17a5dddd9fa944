package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the top players",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = cfg.Leaderboard.Limit
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		board, err := leaderboard.Open(ctx, cfg.Leaderboard.Driver, cfg.Leaderboard.DSN, nil)
		if err != nil {
			return fmt.Errorf("open leaderboard: %w", err)
		}
		if board == nil {
			return fmt.Errorf("%w: set leaderboard.driver in the config file", leaderboard.ErrUnavailable)
		}
		defer board.Close()

		entries, err := board.Top(ctx, limit)
		if err != nil {
			return fmt.Errorf("read leaderboard: %w", err)
		}
		printLeaderboard(cmd.OutOrStdout(), entries)
		return nil
	},
}

func printLeaderboard(w io.Writer, entries []leaderboard.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No champions yet.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-12s  %-8s  %s\n", "#", "Name", "Avatar", "Score")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for i, e := range entries {
		fmt.Fprintf(w, "%-4d  %-12s  %-8s  %d\n", i+1, e.Name, e.Avatar, e.Score)
	}
}

func init() {
	leaderboardCmd.Flags().Int("limit", 0, "Number of rows (default from config, 20)")
}
