package cli

import (
	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <paths...>",
		Short: "Stage files for the next commit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := absPaths(args)
			if err != nil {
				return err
			}
			return opts.run(cmd, func(ctx *runtime.Context) error {
				return ctx.Client.Stage(cmd.Context(), paths...)
			})
		},
	}
}

// newUnstageCmd creates the unstage command
func newUnstageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unstage <paths...>",
		Short: "Remove files from the index, keeping working tree changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := absPaths(args)
			if err != nil {
				return err
			}
			return opts.run(cmd, func(ctx *runtime.Context) error {
				return ctx.Client.Unstage(cmd.Context(), paths...)
			})
		},
	}
}
