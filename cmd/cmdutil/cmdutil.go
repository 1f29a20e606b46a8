// Package cmdutil holds helpers shared by the tally commands.
package cmdutil

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui/views"
)

// Target resolves the account named by the --account flag, or the current
// account. Nothing to act on is not an error: a notice is printed and ok is
// false.
func Target(cmd *cobra.Command, a *app.App) (model.AccountID, bool) {
	ref, _ := cmd.Flags().GetString("account")
	return Resolve(a, ref)
}

// Resolve is Target for an explicit reference.
func Resolve(a *app.App, ref string) (model.AccountID, bool) {
	id, ok := a.Target(ref)
	if ok {
		return id, true
	}

	if ref == "" {
		views.RenderEmpty()
	} else {
		pterm.Warning.Printf("No account matches '%s'\n", ref)
	}
	return "", false
}

// Finish waits for background writes and reports any that failed.
func Finish(a *app.App) {
	views.RenderSaveFailures(a.Settle())
}

func Precision(a *app.App) int32 {
	if a.Service.Config == nil {
		return 2
	}
	return a.Service.Config.Display.Precision
}
