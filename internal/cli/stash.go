package cli

import (
	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
)

// newStashCmd creates the stash command
func newStashCmd(opts *rootOptions) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "stash",
		Short: "Stash working tree and index changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				return ctx.Client.StashChanges(cmd.Context(), message)
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Stash message")

	return cmd
}
