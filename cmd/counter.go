package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hance08/tally/cmd/cmdutil"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui/views"
)

type counterRunner struct {
	loader *app.Loader
	step   func(a *app.App, id model.AccountID) (model.Account, bool)
}

func NewIncCmd(loader *app.Loader) *cobra.Command {
	runner := &counterRunner{
		loader: loader,
		step: func(a *app.App, id model.AccountID) (model.Account, bool) {
			return a.Accounts().Increment(id)
		},
	}

	return &cobra.Command{
		Use:     "inc [times]",
		Aliases: []string{"up"},
		Short:   "Increase the transaction count",
		Long:    `Increase the transaction count of the current account by one, or by [times].`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runner.Run,
	}
}

func NewDecCmd(loader *app.Loader) *cobra.Command {
	runner := &counterRunner{
		loader: loader,
		step: func(a *app.App, id model.AccountID) (model.Account, bool) {
			return a.Accounts().Decrement(id)
		},
	}

	return &cobra.Command{
		Use:     "dec [times]",
		Aliases: []string{"down"},
		Short:   "Decrease the transaction count",
		Long:    `Decrease the transaction count by one, or by [times]. The count never goes below zero.`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runner.Run,
	}
}

func (r *counterRunner) Run(cmd *cobra.Command, args []string) error {
	times := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid repeat count '%s' (must be a positive integer)", args[0])
		}
		times = n
	}

	a, err := r.loader.App()
	if err != nil {
		return err
	}

	id, ok := cmdutil.Target(cmd, a)
	if !ok {
		return nil
	}

	var acc model.Account
	for range times {
		acc, _ = r.step(a, id)
	}

	cmdutil.Finish(a)
	views.RenderCount(acc, cmdutil.Precision(a))
	return nil
}

func NewResetCmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the transaction count to zero",
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

			acc, _ := a.Accounts().ResetCount(id)
			cmdutil.Finish(a)
			views.RenderCount(acc, cmdutil.Precision(a))
			return nil
		},
	}
}
