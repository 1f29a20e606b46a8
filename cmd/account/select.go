package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
)

func NewSelectCmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:     "select [account]",
		Aliases: []string{"use", "switch"},
		Short:   "Make an account the current one",
		Long: `Make an account the current one. [account] is an id, a position from
'tally account list' or a name. Without it, pick from a list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.App()
			if err != nil {
				return err
			}

			accounts := a.Accounts().GetAllAccounts()
			if len(accounts) == 0 {
				views.RenderEmpty()
				return nil
			}

			var id model.AccountID
			if len(args) == 1 {
				var ok bool
				if id, ok = cmdutil.Resolve(a, args[0]); !ok {
					return nil
				}
			} else {
				current, _ := a.Accounts().CurrentID()
				if id, err = prompts.PromptSelectAccount(accounts, current); err != nil {
					return err
				}
			}

			if !a.Accounts().SelectAccount(id) {
				pterm.Warning.Printf("No account matches '%s'\n", id)
				return nil
			}

			cmdutil.Finish(a)
			acc, _ := a.Accounts().GetAccount(id)
			pterm.Success.Printf("Current account: %s\n", acc.Name)
			return nil
		},
	}
}
