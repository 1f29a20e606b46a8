package account

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tally/internal/app"
)

func NewAccountCmd(loader *app.Loader) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "It can add, select, rename, delete accounts and show the list of all accounts.",
		Long:    `It can add, select, rename, delete accounts and show the list of all accounts.`,
	}

	accountCmd.AddCommand(NewAddCmd(loader))
	accountCmd.AddCommand(NewListCmd(loader))
	accountCmd.AddCommand(NewSelectCmd(loader))
	accountCmd.AddCommand(NewRenameCmd(loader))
	accountCmd.AddCommand(NewDeleteCmd(loader))

	return accountCmd
}
