package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/player"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		printStats(cmd.OutOrStdout(), d.env.Stats)
		return nil
	},
}

func printStats(w io.Writer, s *player.Stats) {
	if player.NormalizeName(s.Name) == "" {
		fmt.Fprintln(w, "No player yet. Run mathquest to start.")
		return
	}

	stars := 0
	for _, v := range s.Stars {
		stars += v
	}

	fmt.Fprintf(w, "Player:     %s %s\n", s.Avatar.Icon(), s.Name)
	fmt.Fprintf(w, "Rank:       %s\n", s.RankLabel(s.Language))
	fmt.Fprintf(w, "Score:      %d\n", s.TotalScore)
	fmt.Fprintf(w, "Coins:      %d\n", s.Coins)
	fmt.Fprintf(w, "Games:      %d played, %d won (%d%%)\n", s.GamesPlayed, s.GamesWon, s.WinRate())
	fmt.Fprintf(w, "Accuracy:   %d%% (%d/%d)\n", s.Accuracy(), s.TotalQuestionsCorrect, s.TotalQuestionsAnswered)
	fmt.Fprintf(w, "Stars:      %d\n", stars)
	fmt.Fprintf(w, "Avatars:    %d owned\n", len(s.UnlockedAvatars))
	if s.SelectedAge > 0 {
		fmt.Fprintf(w, "Age:        %d\n", s.SelectedAge)
	}

	ages := make([]int, 0, len(s.UnlockedLevels))
	for age := range s.UnlockedLevels {
		ages = append(ages, age)
	}
	sort.Ints(ages)
	for _, age := range ages {
		fmt.Fprintf(w, "  age %-2d    level %d/%d unlocked\n", age, s.Watermark(age), level.Count)
	}
}
