package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gitdeck.dev/gitdeck/internal/runtime"
)

// newStateCmd creates the state command
func newStateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the tracked repository state and refresh it",
		Long: `Print the tracked repository state and refresh it.

Shows the current branch and branch lists as loaded at startup, then
refreshes them and prints every update the refresh publishes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx *runtime.Context) error {
				state := ctx.Client.State()
				snap := state.Snapshot()
				ctx.Splog.Info("current: %s", snap.CurrentBranch)
				ctx.Splog.Info("local: %s", strings.Join(snap.LocalBranches, ", "))
				ctx.Splog.Info("all: %s", strings.Join(snap.AllBranches, ", "))

				// Subscribe delivers the current value first; only refresh
				// updates are printed.
				refreshing := false
				cancels := []func(){
					state.CurrentBranch().Subscribe(func(name string) {
						if refreshing {
							ctx.Splog.Info("updated current: %s", name)
						}
					}),
					state.LocalBranches().Subscribe(func(names []string) {
						if refreshing {
							ctx.Splog.Info("updated local: %s", strings.Join(names, ", "))
						}
					}),
					state.AllBranches().Subscribe(func(names []string) {
						if refreshing {
							ctx.Splog.Info("updated all: %s", strings.Join(names, ", "))
						}
					}),
				}
				defer func() {
					for _, cancel := range cancels {
						cancel()
					}
				}()

				refreshing = true
				if err := ctx.Client.RefreshCurrentBranch(cmd.Context()); err != nil {
					return err
				}
				if err := ctx.Client.RefreshBranches(cmd.Context(), false); err != nil {
					return err
				}
				return ctx.Client.RefreshBranches(cmd.Context(), true)
			})
		},
	}
}
