package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
	"gitdeck.dev/gitdeck/internal/tui"
)

// newCommitCmd creates the commit command
func newCommitCmd(opts *rootOptions) *cobra.Command {
	var (
		message string
		edit    bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit staged changes",
		Long: `Commit staged changes.

Without -m the message is prompted for, or written in $EDITOR with --edit.
Outside a terminal the message is read from piped standard input, and -m is
required when there is none.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				msg, err := commitMessage(message, edit)
				if err != nil {
					return err
				}
				return ctx.Client.Commit(cmd.Context(), msg)
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Write the commit message in $EDITOR")

	return cmd
}

func commitMessage(message string, edit bool) (string, error) {
	if message != "" {
		return message, nil
	}
	if !tui.IsTTY() {
		piped, err := readPipedStdin()
		if err != nil {
			return "", fmt.Errorf("failed to read commit message from stdin: %w", err)
		}
		if piped == "" {
			return "", fmt.Errorf("a commit message is required when not running in a terminal (use -m)")
		}
		return piped, nil
	}

	var (
		msg string
		err error
	)
	if edit {
		msg, err = tui.EditCommitMessage("")
	} else {
		msg, err = tui.PromptCommitMessage()
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(msg) == "" {
		return "", fmt.Errorf("aborting commit due to empty commit message")
	}
	return msg, nil
}
