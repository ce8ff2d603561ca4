package tui

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
)

// PromptBranch asks the user to pick one of branches, starting on current.
// The selector filters as the user types.
func PromptBranch(message string, branches []string, current string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	if len(branches) == 0 {
		return "", fmt.Errorf("no branches to choose from")
	}

	prompt := &survey.Select{
		Message:  message,
		Options:  branches,
		PageSize: 15,
	}
	if lo.Contains(branches, current) {
		prompt.Default = current
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// PromptCommitMessage asks for a one-line commit message
func PromptCommitMessage() (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var message string
	prompt := &survey.Input{
		Message: "Commit message:",
	}
	if err := survey.AskOne(prompt, &message, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(message), nil
}

// PromptConfirm asks a yes/no question
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	confirmed := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
