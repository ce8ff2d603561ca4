package cli

import (
	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/output"
	"gitdeck.dev/gitdeck/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "branch",
		Aliases: []string{"br"},
		Short:   "List local branches, or local and remote-tracking branches with --all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				names, err := ctx.Client.Branches(cmd.Context(), all)
				if err != nil {
					return err
				}
				f := output.NewFormatter(output.NewRenderer(cmd.OutOrStdout()), ctx.RepoRoot)
				ctx.Splog.Page(f.Branches(names, ctx.Client.State().CurrentBranch().Value()))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include remote-tracking branches")

	return cmd
}

// newCurrentCmd creates the current command
func newCurrentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the name of the checked out branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				name, err := ctx.Client.CurrentBranchName(cmd.Context())
				if err != nil {
					return err
				}
				ctx.Splog.Page(name + "\n")
				return nil
			})
		},
	}
}
