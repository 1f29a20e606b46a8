package account

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
)

type ListCommandRunner struct {
	loader *app.Loader
}

func NewListCmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their totals",
		Long: `List all accounts in display order with their count, amount,
multiplier and total value. The current account is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{loader: loader}
			return runner.Run()
		},
	}
}

func (r *ListCommandRunner) Run() error {
	a, err := r.loader.App()
	if err != nil {
		return err
	}

	current, _ := a.Accounts().CurrentID()
	view := views.NewAccountListView(cmdutil.Precision(a))

	return view.Render(a.Accounts().GetAllAccounts(), current)
}
