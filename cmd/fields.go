package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/validation"
)

// fieldRunner sets one numeric field, prompting for it when no value is given.
type fieldRunner struct {
	loader *app.Loader
	label  string
	prompt func(acc model.Account) (string, error)
	set    func(a *app.App, id model.AccountID, raw string) (validation.Result, bool)
}

func NewAmountCmd(loader *app.Loader) *cobra.Command {
	runner := &fieldRunner{
		loader: loader,
		label:  "Amount",
		prompt: func(acc model.Account) (string, error) {
			return prompts.PromptAmount(acc.TransactionAmount)
		},
		set: func(a *app.App, id model.AccountID, raw string) (validation.Result, bool) {
			return a.Accounts().SetAmount(id, raw)
		},
	}

	return &cobra.Command{
		Use:   "amount [value]",
		Short: "Set the amount of each transaction",
		Long: `Set the fixed amount of each transaction. Values that are not
non-negative numbers are stored as 0 and reported as a warning.
Use "--" before negative input, e.g. tally amount -- -5`,
		Args: cobra.MaximumNArgs(1),
		RunE: runner.Run,
	}
}

func NewMultiplierCmd(loader *app.Loader) *cobra.Command {
	runner := &fieldRunner{
		loader: loader,
		label:  "Multiplier",
		prompt: func(acc model.Account) (string, error) {
			return prompts.PromptMultiplier(acc.TransactionMultiplier)
		},
		set: func(a *app.App, id model.AccountID, raw string) (validation.Result, bool) {
			return a.Accounts().SetMultiplier(id, raw)
		},
	}

	return &cobra.Command{
		Use:     "multiplier [value]",
		Aliases: []string{"mult"},
		Short:   "Set the transaction multiplier",
		Long: `Set the multiplier applied to the total. Values that are not
positive numbers are stored as 1 and reported as a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runner.Run,
	}
}

func (r *fieldRunner) Run(cmd *cobra.Command, args []string) error {
	a, err := r.loader.App()
	if err != nil {
		return err
	}

	id, ok := cmdutil.Target(cmd, a)
	if !ok {
		return nil
	}

	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		acc, _ := a.Accounts().GetAccount(id)
		if raw, err = r.prompt(acc); err != nil {
			return err
		}
	}

	res, _ := r.set(a, id, raw)
	views.RenderValidation(r.label, res)

	cmdutil.Finish(a)

	acc, _ := a.Accounts().GetAccount(id)
	return views.RenderAccountDetail(acc, cmdutil.Precision(a))
}
