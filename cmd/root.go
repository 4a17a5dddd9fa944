package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathquest",
	Short: "Arithmetic quiz game for kids",
	Long:  "MathQuest is a terminal arithmetic quiz for children aged 4 to 12: ten timed levels per age, coins, avatars and an optional shared leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHQUEST_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides MATHQUEST_CONFIG env var)")
	rootCmd.PersistentFlags().String("lang", "", "Display language: id or en")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(avatarsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
