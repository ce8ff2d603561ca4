package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
	"gitdeck.dev/gitdeck/internal/tui"
)

// newCloneCmd creates the clone command
func newCloneCmd(opts *rootOptions) *cobra.Command {
	var (
		branch string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "clone <source> <directory>",
		Short: "Clone a repository and show its progress",
		Long: `Clone a repository and show its progress.

By default only the given branch (or the remote's default branch) is
fetched. With --all every branch is cloned and --branch is checked out
afterwards. Press q or ctrl+c to stop an interactive clone.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				source := args[0]
				target, err := filepath.Abs(args[1])
				if err != nil {
					return fmt.Errorf("failed to resolve %s: %w", args[1], err)
				}

				targetCtx, err := ctx.ForTarget(cmd.Context(), target, nil)
				if err != nil {
					return err
				}

				cloneCtx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				updates := targetCtx.Client.Clone(cloneCtx, source, branch, all)

				if tui.IsTTY() {
					return tui.RunCloneTUI(source, target, updates, cancel)
				}
				ctx.Splog.Info("Cloning %s into %s", source, target)
				return tui.RunClonePlain(updates, ctx.Splog)
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to clone, or to check out after an --all clone")
	cmd.Flags().BoolVar(&all, "all", false, "Clone every branch instead of a single one")

	return cmd
}
