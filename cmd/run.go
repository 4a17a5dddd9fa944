package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/app"
	"github.com/abhisek/mathquest/internal/level"
)

// runApp opens the store, builds dependencies, and launches the TUI. A
// non-nil play starts that level straight away.
func runApp(cmd *cobra.Command, play func(d *deps) (*level.Config, error)) error {
	d, err := bootstrap(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	opts := app.Options{Env: d.env}
	if play != nil {
		cfg, err := play(d)
		if err != nil {
			return err
		}
		opts.Play = cfg
	}
	return app.Run(opts)
}
