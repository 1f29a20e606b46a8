package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
)

type AccountListView struct {
	Precision int32
}

func NewAccountListView(precision int32) *AccountListView {
	return &AccountListView{Precision: precision}
}

func (v *AccountListView) Render(accounts []model.Account, current model.AccountID) error {
	if len(accounts) == 0 {
		RenderEmpty()
		return nil
	}

	headers := []string{"#", "ID", "Name", "Count", "Amount", "Multiplier", "Total"}
	tableData := pterm.TableData{headers}

	var grand float64
	for i, acc := range accounts {
		total := acc.Total()
		grand += total

		row := []string{
			fmt.Sprintf("%d", i+1),
			string(acc.ID),
			truncate(acc.Name, constants.MaxNameLen),
			fmt.Sprintf("%d", acc.TransactionCount),
			utils.FormatNumber(acc.TransactionAmount),
			utils.FormatNumber(acc.TransactionMultiplier),
			utils.FormatTotal(total, v.Precision),
		}

		// current account - Green
		if acc.ID == current {
			row[0] = pterm.Green("*" + row[0])
			row[2] = pterm.Green(row[2])
			row[6] = pterm.Green(row[6])
		}
		tableData = append(tableData, row)
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts, combined value %s\n", len(accounts), utils.FormatTotal(grand, v.Precision))

	return nil
}

// RenderEmpty prints the hint shown when no account exists yet.
func RenderEmpty() {
	pterm.Info.Println("No accounts yet. Run 'tally account add' to create one.")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
