package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/tui"
)

func NewUICmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive counter",
		Long: `Open the interactive counter. Use ↑ and ↓ to count, ← and → to
switch accounts, and the keys shown at the bottom to edit fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.App()
			if err != nil {
				return err
			}

			if err := tui.Run(a.Accounts(), cmdutil.Precision(a)); err != nil {
				return err
			}

			cmdutil.Finish(a)
			return nil
		},
	}
}
