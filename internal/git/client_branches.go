package git

import (
	"context"
	"fmt"
	"strings"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
)

// Phrases git prints on a successful checkout
const (
	switchedToBranch    = "Switched to branch"
	switchedToNewBranch = "Switched to a new branch"
)

// classifyListing applies the sentinel rule and treats only lines that
// start with "fatal:" as failures, so branch names or commit subjects that
// merely contain the word do not fail the query.
func classifyListing(raw string) error {
	if err := classifySentinelOnly(raw); err != nil {
		return err
	}
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "fatal:") {
			return gitdeckerrors.NewOutputError(raw)
		}
	}
	return nil
}

// CurrentBranchName asks git for the abbreviated current ref, publishes it
// and returns it.
func (c *Client) CurrentBranchName(ctx context.Context) (string, error) {
	output, err := c.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if err := classifyListing(output); err != nil {
		return "", err
	}
	name := ParseBranchName(output)
	c.state.currentBranch.publish(name)
	return name, nil
}

// RefreshCurrentBranch updates the current branch field of the state
func (c *Client) RefreshCurrentBranch(ctx context.Context) error {
	_, err := c.CurrentBranchName(ctx)
	return err
}

// Branches lists local branches, or local and remote branches when all is
// set, and publishes the list to the matching state field.
func (c *Client) Branches(ctx context.Context, all bool) ([]string, error) {
	args := []string{"branch", "--list"}
	if all {
		args = append(args, "--all")
	}
	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if err := classifyListing(output); err != nil {
		return nil, err
	}
	names := ParseBranches(output)
	c.state.publishBranches(all, names)
	return names, nil
}

// RefreshBranches updates the local or all-branches field of the state
func (c *Client) RefreshBranches(ctx context.Context, all bool) error {
	_, err := c.Branches(ctx, all)
	return err
}

// Checkout switches to an existing branch. It does nothing when name is
// already the cached current branch. After a successful checkout the
// current branch is refreshed; a failure of that refresh is ignored.
func (c *Client) Checkout(ctx context.Context, name string) error {
	if name == c.state.currentBranch.Value() {
		return nil
	}
	if _, err := c.runChecked(ctx, []string{"checkout", name}, switchedToBranch, switchedToNewBranch); err != nil {
		return err
	}
	c.log.Info("Checked out %s", name)

	if err := c.RefreshCurrentBranch(ctx); err != nil {
		c.log.Debug("refresh current branch after checkout of %s: %v", name, err)
	}
	return nil
}

// CreateBranch creates a branch from HEAD and switches to it
func (c *Client) CreateBranch(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("branch name is required")
	}
	if _, err := c.runChecked(ctx, []string{"checkout", "-b", name}, switchedToNewBranch); err != nil {
		return err
	}
	c.log.Info("Created and checked out %s", name)

	c.refreshBestEffort(ctx, true)
	return nil
}
