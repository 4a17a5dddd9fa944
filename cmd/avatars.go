package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/i18n"
)

var avatarsCmd = &cobra.Command{
	Use:   "avatars",
	Short: "Print avatar prices, modifiers and abilities",
	Run: func(cmd *cobra.Command, args []string) {
		lang, _ := cmd.Flags().GetString("lang")
		printAvatars(cmd.OutOrStdout(), i18n.Parse(lang))
	},
}

func printAvatars(w io.Writer, lang i18n.Lang) {
	fmt.Fprintf(w, "%-8s  %-6s  %-6s  %-6s  %-7s  %-6s  %s\n",
		"Avatar", "Price", "Score", "Time", "Streak", "Start", "Ability")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, id := range avatar.All() {
		m := avatar.Stats(id)
		fmt.Fprintf(w, "%-8s  %-6d  x%-5.2f  +%-5d  x%-6.2f  %-6d  %s\n",
			id,
			m.Price,
			m.ScoreMultiplier,
			m.TimeBonus,
			m.StreakMultiplier,
			m.StartStreak,
			avatar.Ability(id, lang),
		)
	}
}
