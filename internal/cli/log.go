package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/git"
	"gitdeck.dev/gitdeck/internal/output"
	"gitdeck.dev/gitdeck/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd(opts *rootOptions) *cobra.Command {
	var (
		maxEntries int
		path       string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history of the current branch",
		Long: `Show commit history of the current branch, newest first.

The default number of entries comes from the repository's historyLimit
setting. Use -n 0 to show the whole history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxEntries < 0 {
				return fmt.Errorf("-n must not be negative")
			}
			return opts.run(cmd, func(ctx *runtime.Context) error {
				histOpts := git.HistoryOptions{MaxEntries: ctx.Settings.HistoryLimit}
				if cmd.Flags().Changed("max-count") {
					histOpts.MaxEntries = maxEntries
				}
				if path != "" {
					abs, err := absPath(path)
					if err != nil {
						return err
					}
					histOpts.Path = abs
				}

				commits, err := ctx.Client.CommitHistory(cmd.Context(), histOpts)
				if err != nil {
					return err
				}
				if len(commits) == 0 {
					ctx.Splog.Info("No commits to show.")
					return nil
				}
				f := output.NewFormatter(output.NewRenderer(cmd.OutOrStdout()), ctx.RepoRoot)
				ctx.Splog.Page(f.Commits(commits))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&maxEntries, "max-count", "n", 0, "Maximum number of commits to show (default: historyLimit setting)")
	cmd.Flags().StringVar(&path, "path", "", "Only show commits touching this path")

	return cmd
}
