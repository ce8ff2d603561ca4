package cli

import (
	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
)

// newPullCmd creates the pull command
func newPullCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull the current branch from its upstream",
		Long: `Pull the current branch from its upstream.

Merge conflicts do not fail the command. Run "gitdeck status" afterwards to
see conflicted files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				return ctx.Client.Pull(cmd.Context())
			})
		},
	}
}
