package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption returns a survey option that sets the question icon to "-"
// This provides a consistent UI style across all interactive prompts.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

// ConfirmDestructive asks a yes/no question that defaults to no.
func ConfirmDestructive(message string) (bool, error) {
	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, IconOption()); err != nil {
		return false, err
	}
	return confirmation, nil
}
