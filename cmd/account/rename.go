package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/validation"
)

func NewRenameCmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [name]",
		Short: "Rename an account",
		Long: `Rename the current account, or the one given with --account.
A blank name falls back to a generated name such as "Account 3".
Without [name], you are prompted for one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.App()
			if err != nil {
				return err
			}

			id, ok := cmdutil.Target(cmd, a)
			if !ok {
				return nil
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				acc, _ := a.Accounts().GetAccount(id)
				if name, err = prompts.PromptAccountName(acc.Name); err != nil {
					return err
				}
			}

			if hint := validation.NameHint(name); hint != "" {
				pterm.Warning.Println(hint)
			}

			acc, _ := a.Accounts().RenameAccount(id, name)
			cmdutil.Finish(a)
			pterm.Success.Printf("Account %s renamed to %q\n", acc.ID, acc.Name)
			return nil
		},
	}
}
