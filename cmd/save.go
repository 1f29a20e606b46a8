package cmd

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tally/internal/app"
)

func NewSaveCmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write all accounts to storage now",
		Long: `Every change is saved automatically in the background. save writes
the current state synchronously and reports whether it succeeded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.App()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			if err := a.Accounts().Save(ctx); err != nil {
				return err
			}

			pterm.Success.Println("Your data has been saved")
			return nil
		},
	}
}
