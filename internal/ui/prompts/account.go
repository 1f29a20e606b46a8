package prompts

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
)

// PromptAccountName asks for a new account name. Pressing Enter keeps current.
func PromptAccountName(current string) (string, error) {
	name, err := PromptInput("Account Name:", "Press Enter to keep the current name", current)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return name, nil
}

// PromptAmount asks for the amount of each transaction.
func PromptAmount(current float64) (string, error) {
	amount, err := PromptInput(
		"Amount per transaction:",
		"A non-negative number; anything else is stored as 0",
		utils.FormatNumber(current),
	)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return amount, nil
}

// PromptMultiplier asks for the transaction multiplier.
func PromptMultiplier(current float64) (string, error) {
	multiplier, err := PromptInput(
		"Transaction multiplier:",
		"A positive number; anything else is stored as 1",
		utils.FormatNumber(current),
	)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return multiplier, nil
}

// PromptSelectAccount lets the user pick one of accounts.
func PromptSelectAccount(accounts []model.Account, current model.AccountID) (model.AccountID, error) {
	options := make([]Option, 0, len(accounts))
	for i, acc := range accounts {
		options = append(options, Option{
			Label: fmt.Sprintf("%d. %s", i+1, acc.Name),
			Value: string(acc.ID),
		})
	}

	selected, err := PromptSelect("Select account:", options, string(current))
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return model.AccountID(selected), nil
}
