package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
)

func RenderAccountDetail(acc model.Account, precision int32) error {
	ui.PrintL2Title("%s", acc.Name)

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), string(acc.ID)},
		{pterm.Blue("Transactions"), fmt.Sprintf("%d", acc.TransactionCount)},
		{pterm.Blue("Amount"), utils.FormatNumber(acc.TransactionAmount)},
		{pterm.Blue("Multiplier"), utils.FormatNumber(acc.TransactionMultiplier)},
		{pterm.Blue("Total Value"), pterm.Green(utils.FormatTotal(acc.Total(), precision))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderCount prints the one-line status after a counter change.
func RenderCount(acc model.Account, precision int32) {
	pterm.Success.Printf("%s: %d transactions, total %s\n",
		acc.Name, acc.TransactionCount, utils.FormatTotal(acc.Total(), precision))
}

func RenderAccountCreated(acc model.Account) {
	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), string(acc.ID)},
		{pterm.Blue("Name"), acc.Name},
	}
	_ = pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account created successfully!")
}

func RenderDeletePreview(acc model.Account, precision int32) {
	pterm.Warning.Printf("About to delete account %q:\n", acc.Name)
	_ = RenderAccountDetail(acc, precision)
	pterm.Warning.Println("This action cannot be undone!")
}
