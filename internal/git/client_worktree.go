package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ChangedFiles returns the working tree status. A malformed status line
// fails the whole query with a *StatusLineError.
func (c *Client) ChangedFiles(ctx context.Context) ([]ChangedFile, error) {
	output, err := c.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	if err := classifySentinelOnly(output); err != nil {
		return nil, err
	}
	return ParseStatus(c.dir, output)
}

// CommitHistory returns commits newest first, optionally capped and
// filtered by path. The remote URL is looked up once and shared by all records.
func (c *Client) CommitHistory(ctx context.Context, opts HistoryOptions) ([]Commit, error) {
	args := []string{"log", "--pretty=format:" + historyFormat}
	if opts.MaxEntries > 0 {
		args = append(args, "-n", strconv.Itoa(opts.MaxEntries))
	}
	if opts.Path != "" {
		args = append(args, "--", opts.Path)
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if err := classifyListing(output); err != nil {
		return nil, err
	}

	return ParseHistory(output, c.remoteURL(ctx), c.now()), nil
}

// remoteURL resolves the configured remote's URL, or "" when there is none.
func (c *Client) remoteURL(ctx context.Context) string {
	output, err := c.run(ctx, "remote", "get-url", c.remote)
	if err != nil {
		c.log.Debug("resolve remote %s: %v", c.remote, err)
		return ""
	}
	output = strings.TrimSpace(output)
	if Classify(output) != nil || strings.HasPrefix(output, "error:") {
		return ""
	}
	return output
}

// DiscardFileChanges restores one path to its state in the index
func (c *Client) DiscardFileChanges(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}
	return c.runLogged(ctx, fmt.Sprintf("Discarded changes to %s", path), "checkout", "--", path)
}

// DiscardAllChanges restores every tracked file in the working tree
func (c *Client) DiscardAllChanges(ctx context.Context) error {
	return c.runLogged(ctx, "Discarded all changes", "checkout", "--", ".")
}

// StashChanges stashes local modifications, with an optional message
func (c *Client) StashChanges(ctx context.Context, message string) error {
	args := []string{"stash", "push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	return c.runLogged(ctx, "Stashed changes", args...)
}

// Stage adds paths to the index
func (c *Client) Stage(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("at least one path is required")
	}
	args := append([]string{"add", "--"}, paths...)
	return c.runLogged(ctx, fmt.Sprintf("Staged %s", strings.Join(paths, ", ")), args...)
}

// Unstage removes paths from the index, keeping working tree changes
func (c *Client) Unstage(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("at least one path is required")
	}
	args := append([]string{"reset", "-q", "HEAD", "--"}, paths...)
	return c.runLogged(ctx, fmt.Sprintf("Unstaged %s", strings.Join(paths, ", ")), args...)
}

// Commit records the staged changes with message. The current branch is
// refreshed afterwards since the first commit of a repository creates it.
func (c *Client) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message is required")
	}
	if err := c.runLogged(ctx, "Committed changes", "commit", "-m", message); err != nil {
		return err
	}
	if err := c.RefreshCurrentBranch(ctx); err != nil {
		c.log.Debug("refresh current branch after commit: %v", err)
	}
	return nil
}
