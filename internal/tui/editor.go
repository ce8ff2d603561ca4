package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// commitTemplate is shown below the message being edited
const commitTemplate = `
# Enter the commit message. Lines starting with '#' are ignored
# and an empty message aborts the commit.
`

// editorCommand returns the user's editor: GIT_EDITOR, then EDITOR, then vi.
func editorCommand() string {
	if editor := os.Getenv("GIT_EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// OpenEditor opens the user's editor on initialContent and returns the edited text
func OpenEditor(initialContent, filenamePattern string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", filenamePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(initialContent); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	// The editor value may carry flags ("code --wait"), so it goes through the shell.
	cmd := exec.Command("sh", "-c", editorCommand()+` "$1"`, "sh", tmpFile.Name()) // #nosec G204
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(content), nil
}

// EditCommitMessage opens the editor on a commit message template and
// returns the message without comment lines.
func EditCommitMessage(initial string) (string, error) {
	content, err := OpenEditor(initial+"\n"+commitTemplate, "gitdeck-commit-*.txt")
	if err != nil {
		return "", err
	}
	return StripComments(content), nil
}

// StripComments drops '#' lines and surrounding blank lines
func StripComments(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t\r"))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
