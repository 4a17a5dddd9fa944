package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete local player data and history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes the player, coins, stars and history; re-run with --yes to confirm")
		}

		d, err := bootstrap(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.store.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		d.env.Log().Info("local data reset")
		fmt.Fprintln(cmd.OutOrStdout(), "Local data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all local data")
}
