package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
)

func NewShowCmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current account and its total value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.App()
			if err != nil {
				return err
			}

			id, ok := cmdutil.Target(cmd, a)
			if !ok {
				return nil
			}

			acc, _ := a.Accounts().GetAccount(id)
			return views.RenderAccountDetail(acc, cmdutil.Precision(a))
		},
	}
}
