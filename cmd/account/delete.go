package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
)

func NewDeleteCmd(loader *app.Loader) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [account]",
		Aliases: []string{"rm"},
		Short:   "Delete an account",
		Long: `Delete an account. This action cannot be undone. If it was the
current account, the first remaining account becomes current.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.App()
			if err != nil {
				return err
			}

			ref, _ := cmd.Flags().GetString("account")
			if len(args) == 1 {
				ref = args[0]
			}

			id, ok := cmdutil.Resolve(a, ref)
			if !ok {
				return nil
			}
			acc, _ := a.Accounts().GetAccount(id)

			if !yes {
				views.RenderDeletePreview(acc, cmdutil.Precision(a))

				confirmation, err := ui.ConfirmDestructive("Do you want to delete this account?")
				if err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			a.Accounts().DeleteAccount(id)
			cmdutil.Finish(a)

			pterm.Success.Printf("Account %q deleted successfully\n", acc.Name)
			if current, ok := a.Accounts().GetCurrentAccount(); ok {
				pterm.Info.Printf("Current account: %s\n", current.Name)
			}
			ui.Separator()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}
