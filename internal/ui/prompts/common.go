package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a free text value. The current value is shown as
// the placeholder and returned when the user just presses Enter.
func PromptInput(message string, helpText string, current string) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if helpText != "" {
		input.Description(helpText)
	}
	if current != "" {
		input.Placeholder(current)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" {
		return current, nil
	}
	return inputVal, nil
}

// Option is one entry of a PromptSelect list.
type Option struct {
	Label string
	Value string
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []Option, defaultValue string) (string, error) {
	selected := defaultValue

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()

	return selected, err
}
