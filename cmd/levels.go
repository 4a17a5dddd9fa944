package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table for an age",
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")
		if err := level.ValidAge(age); err != nil {
			return err
		}
		lang, _ := cmd.Flags().GetString("lang")
		printLevels(cmd.OutOrStdout(), level.ForAge(age, i18n.Parse(lang)))
		return nil
	},
}

func printLevels(w io.Writer, levels []level.Config) {
	fmt.Fprintf(w, "%-3s  %-14s  %-28s  %-9s  %-10s  %-6s  %s\n",
		"#", "ID", "Name", "Ops", "Range", "Target", "Visual")
	fmt.Fprintln(w, strings.Repeat("─", 90))

	for _, cfg := range levels {
		ops := make([]string, len(cfg.Operators))
		for i, op := range cfg.Operators {
			ops[i] = string(op)
		}
		visual := ""
		if cfg.IsVisual {
			visual = "yes"
		}
		fmt.Fprintf(w, "%-3d  %-14s  %-28s  %-9s  %-10s  %-6d  %s\n",
			cfg.Index,
			cfg.ID,
			cfg.Name,
			strings.Join(ops, " "),
			fmt.Sprintf("%d-%d", cfg.NumberRange.Min, cfg.NumberRange.Max),
			cfg.TargetScore,
			visual,
		)
	}
}

func init() {
	levelsCmd.Flags().Int("age", 0, "Player age (4-12)")
	levelsCmd.MarkFlagRequired("age")
}
