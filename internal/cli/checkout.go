package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
	"gitdeck.dev/gitdeck/internal/tui"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(opts *rootOptions) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Switch to a branch. If no branch is provided, opens an interactive selector.",
		Long: `Switch to a branch. If no branch is provided, opens an interactive selector.

With -b the branch is created from HEAD before switching to it. Checking out
the branch that is already current does nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				branchName := ""
				if len(args) > 0 {
					branchName = args[0]
				}

				if create {
					if branchName == "" {
						return fmt.Errorf("a branch name is required with -b")
					}
					return ctx.Client.CreateBranch(cmd.Context(), branchName)
				}

				if branchName == "" {
					selected, err := selectBranch(cmd, ctx)
					if err != nil {
						return err
					}
					branchName = selected
				}

				current := ctx.Client.State().CurrentBranch().Value()
				if err := ctx.Client.Checkout(cmd.Context(), branchName); err != nil {
					return err
				}
				if branchName == current {
					ctx.Splog.Info("Already on %s", branchName)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "b", false, "Create the branch before switching to it")

	return cmd
}

// selectBranch prompts for one of the local branches
func selectBranch(cmd *cobra.Command, ctx *runtime.Context) (string, error) {
	if !tui.IsTTY() {
		return "", fmt.Errorf("a branch name is required when not running in a terminal")
	}
	branches, err := ctx.Client.Branches(cmd.Context(), false)
	if err != nil {
		return "", err
	}
	return tui.PromptBranch("Checkout a branch:", branches, ctx.Client.State().CurrentBranch().Value())
}
