package cli

import (
	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/output"
	"gitdeck.dev/gitdeck/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show changed files in the working tree and index",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				files, err := ctx.Client.ChangedFiles(cmd.Context())
				if err != nil {
					return err
				}
				f := output.NewFormatter(output.NewRenderer(cmd.OutOrStdout()), ctx.RepoRoot)
				ctx.Splog.Info("On branch %s", ctx.Client.State().CurrentBranch().Value())
				ctx.Splog.Page(f.ChangedFiles(files))
				return nil
			})
		},
	}
}
