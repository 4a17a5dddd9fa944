package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/player"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a level directly",
	Long:  "Start a level without going through the menus. The level must already be unlocked; --level defaults to the highest unlocked one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")
		index, _ := cmd.Flags().GetInt("level")
		if err := level.ValidAge(age); err != nil {
			return err
		}

		return runApp(cmd, func(d *deps) (*level.Config, error) {
			stats := d.env.Stats
			if player.NormalizeName(stats.Name) == "" {
				return nil, fmt.Errorf("no player yet: run mathquest once to pick a name")
			}
			cfg, err := pickLevel(stats, age, index)
			if err != nil {
				return nil, err
			}
			stats.SelectedAge = age
			d.env.Save()
			return &cfg, nil
		})
	},
}

// pickLevel resolves the level to play for age. Index 0 means the
// highest unlocked level.
func pickLevel(stats *player.Stats, age, index int) (level.Config, error) {
	if index == 0 {
		index = stats.Watermark(age)
	}
	cfg, err := level.Get(age, index, stats.Language)
	if err != nil {
		return level.Config{}, err
	}
	if !stats.LevelUnlocked(age, index) {
		return level.Config{}, fmt.Errorf("level %d for age %d is locked (highest unlocked: %d)", index, age, stats.Watermark(age))
	}
	return cfg, nil
}

func init() {
	playCmd.Flags().Int("age", 0, "Player age (4-12)")
	playCmd.Flags().Int("level", 0, "Level number (1-10); defaults to the highest unlocked")
	playCmd.MarkFlagRequired("age")
}
