package account

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
)

func NewAddCmd(loader *app.Loader) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"create", "new"},
		Short:   "Add a new account and select it",
		Long: `Add a new account with a zero count, zero amount and a multiplier of 1,
and make it the current account.

Example: tally account add -n Futures`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.App()
			if err != nil {
				return err
			}

			if hint := validation.NameHint(name); hint != "" {
				pterm.Warning.Println(hint)
			}

			acc := a.Accounts().CreateAccount(name)
			cmdutil.Finish(a)
			views.RenderAccountCreated(acc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Account name (defaults to a generated name)")

	return cmd
}
