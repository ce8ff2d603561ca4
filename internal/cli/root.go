// Package cli implements the gitdeck command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/output"
	"gitdeck.dev/gitdeck/internal/runtime"
)

// rootOptions holds the global flags and the logger shared by one execution
type rootOptions struct {
	repo  string
	debug bool
	splog *output.Splog
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gitdeck",
		Short: "gitdeck is a small front end for everyday git work",
		Long: `gitdeck is a small front end for everyday git work.

It drives the git binary for branches, status, history, staging and clones,
and keeps track of the current branch and branch lists as it goes.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			opts.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.repo, "repo", "", "Path inside the repository to operate on (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Print debug output")

	rootCmd.AddCommand(
		newBranchCmd(opts),
		newCurrentCmd(opts),
		newCheckoutCmd(opts),
		newPullCmd(opts),
		newCloneCmd(opts),
		newStatusCmd(opts),
		newLogCmd(opts),
		newAddCmd(opts),
		newUnstageCmd(opts),
		newCommitCmd(opts),
		newStashCmd(opts),
		newDiscardCmd(opts),
		newStateCmd(opts),
	)

	return rootCmd
}

// logger returns the execution's logger, creating it on first use. When the
// log file cannot be opened the console logger is used alone.
func (o *rootOptions) logger(cmd *cobra.Command) *output.Splog {
	if o.splog != nil {
		return o.splog
	}
	splog, err := output.NewSplogWithConfig(cmd.OutOrStdout(), output.LogFilePath())
	if err != nil {
		splog, _ = output.NewSplogWithConfig(cmd.OutOrStdout(), "")
		splog.Debug("file logging disabled: %v", err)
	}
	if o.debug {
		splog.SetDebug(true)
	}
	o.splog = splog
	return splog
}

func (o *rootOptions) close() {
	if o.splog != nil {
		_ = o.splog.Close()
		o.splog = nil
	}
}

// run provides a runtime context to a command's execution function
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.NewContext(cmd.Context(), runtime.Options{
		RepoPath: o.repo,
		Splog:    o.logger(cmd),
	})
	if err != nil {
		return err
	}
	return fn(ctx)
}
