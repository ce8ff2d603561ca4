package git

import (
	"context"
	"path/filepath"
	"strings"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
)

// Pull pulls the current branch. Only the not-a-repository sentinel fails
// it: any other output, including merge conflict text, counts as success.
func (c *Client) Pull(ctx context.Context) error {
	output, err := c.run(ctx, "pull")
	if err != nil {
		return err
	}
	if err := classifySentinelOnly(output); err != nil {
		return err
	}
	c.log.Info("Pulled %s", c.state.currentBranch.Value())

	if err := c.RefreshCurrentBranch(ctx); err != nil {
		c.log.Debug("refresh current branch after pull: %v", err)
	}
	return nil
}

// Clone clones source into the client's directory and streams progress.
//
// With allBranches the whole repository is cloned and branch is checked out
// afterwards; otherwise only branch is cloned. Events arrive in the order git
// prints them. The stream ends with an update carrying Err on failure, or
// simply closes. When git reports a "fatal:" line the clone is treated as
// failed: the line is delivered as an event, the stream closes and neither
// the checkout nor the state refresh runs. Cancel ctx to stop the clone; no event is
// delivered after cancellation and the directory may hold a partial checkout.
func (c *Client) Clone(ctx context.Context, source, branch string, allBranches bool) <-chan CloneUpdate {
	out := make(chan CloneUpdate)

	go func() {
		defer close(out)

		streamCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		parent := filepath.Dir(c.dir)
		var cloneArgs []string
		if allBranches {
			cloneArgs = []string{"clone", "--progress", source, c.dir}
		} else {
			cloneArgs = []string{"clone", "--progress"}
			if branch != "" {
				cloneArgs = append(cloneArgs, "--branch", branch)
			}
			cloneArgs = append(cloneArgs, "--single-branch", source, c.dir)
		}

		if !c.pumpProgress(streamCtx, out, c.runner.RunIncremental(streamCtx, parent, cloneArgs...)) {
			return
		}

		if allBranches && branch != "" {
			checkout := c.runner.RunIncremental(streamCtx, c.dir, "checkout", branch)
			if !c.pumpProgress(streamCtx, out, checkout) {
				return
			}
		}

		c.log.Info("Cloned %s into %s", source, c.dir)
		c.refreshBestEffort(streamCtx, true)
	}()

	return out
}

// pumpProgress turns runner chunks into clone updates. It returns false when
// the stream was terminated by an error or cancellation, or when git printed
// a "fatal:" line.
func (c *Client) pumpProgress(ctx context.Context, out chan<- CloneUpdate, chunks <-chan Chunk) bool {
	failed := ""
	for chunk := range chunks {
		var update CloneUpdate
		switch {
		case chunk.Err != nil:
			update.Err = gitdeckerrors.NewOutputError(chunk.Err.Error())
		case strings.Contains(chunk.Text, gitdeckerrors.NotARepositorySentinel):
			update.Err = gitdeckerrors.ErrNotARepository
		default:
			update.Event = ParseProgress(chunk.Text)
			if strings.HasPrefix(strings.TrimSpace(chunk.Text), "fatal:") {
				failed = chunk.Text
			}
		}

		if !sendUpdate(ctx, out, update) || update.Err != nil {
			return false
		}
	}
	if failed != "" {
		c.log.Debug("clone step failed: %s", failed)
		return false
	}
	return ctx.Err() == nil
}

func sendUpdate(ctx context.Context, out chan<- CloneUpdate, u CloneUpdate) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case out <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
