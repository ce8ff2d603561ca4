package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
	"gitdeck.dev/gitdeck/internal/tui"
)

// newDiscardCmd creates the discard command
func newDiscardCmd(opts *rootOptions) *cobra.Command {
	var (
		all bool
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "discard [path]",
		Short: "Discard working tree changes to a file, or every change with --all",
		Long: `Discard working tree changes to a file, or every change with --all.

--all restores every tracked file from the index. Untracked files and staged
changes are kept. It asks for confirmation in a terminal unless --yes is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("pass either a path or --all")
			}

			return opts.run(cmd, func(ctx *runtime.Context) error {
				if !all {
					path, err := absPath(args[0])
					if err != nil {
						return err
					}
					return ctx.Client.DiscardFileChanges(cmd.Context(), path)
				}

				if !yes {
					if !tui.IsTTY() {
						return fmt.Errorf("refusing to discard all changes without --yes when not running in a terminal")
					}
					ok, err := tui.PromptConfirm("Discard all unstaged changes to tracked files?", false)
					if err != nil {
						return err
					}
					if !ok {
						ctx.Splog.Info("Nothing discarded.")
						return nil
					}
				}
				return ctx.Client.DiscardAllChanges(cmd.Context())
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Discard unstaged changes to every tracked file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
