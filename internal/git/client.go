package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DefaultRemote is the remote whose URL is attached to commit history records
const DefaultRemote = "origin"

// Logger is the sink for informational and error messages. Calls are fire
// and forget; *output.Splog satisfies it.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the log sink
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock sets the time source used for unparsable commit dates
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRemote sets the remote queried for commit history URLs
func WithRemote(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.remote = name
		}
	}
}

// Client runs git against one working directory, parses its output and
// keeps the observable repository state up to date.
//
// Operations are meant to be called from a single control flow. They block
// for the duration of the git process.
type Client struct {
	dir    string
	runner CommandRunner
	state  *Store
	log    Logger
	now    func() time.Time
	remote string
}

// NewClient binds a client to dir and runner.
//
// Construction refreshes the current branch, the local branches and all
// branches on a best-effort basis: a failed refresh is logged and ignored,
// so a fresh or uninitialised directory still yields a usable client. This
// differs from every other operation, which returns its errors.
func NewClient(ctx context.Context, dir string, runner CommandRunner, opts ...Option) (*Client, error) {
	if runner == nil {
		return nil, fmt.Errorf("command runner is required")
	}
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("repository directory is required")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	c := &Client{
		dir:    absDir,
		runner: runner,
		state:  newStore(),
		log:    nopLogger{},
		now:    time.Now,
		remote: DefaultRemote,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.refreshBestEffort(ctx, true)
	return c, nil
}

// Dir returns the repository directory the client is bound to
func (c *Client) Dir() string {
	return c.dir
}

// State returns the observable repository state. Callers can read and
// subscribe but not publish.
func (c *Client) State() *Store {
	return c.state
}

// refreshBestEffort refreshes the current branch and, if branches is set,
// both branch lists. Failures are logged and dropped.
func (c *Client) refreshBestEffort(ctx context.Context, branches bool) {
	if err := c.RefreshCurrentBranch(ctx); err != nil {
		c.log.Debug("refresh current branch in %s: %v", c.dir, err)
	}
	if !branches {
		return
	}
	for _, all := range []bool{false, true} {
		if err := c.RefreshBranches(ctx, all); err != nil {
			c.log.Debug("refresh branches (all=%t) in %s: %v", all, c.dir, err)
		}
	}
}

// run executes git in the repository directory
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	return c.runner.Run(ctx, c.dir, args...)
}

// runChecked executes git and applies Classify with the given expected phrases
func (c *Client) runChecked(ctx context.Context, args []string, expected ...string) (string, error) {
	output, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}
	if err := Classify(output, expected...); err != nil {
		return "", err
	}
	return output, nil
}

// runLogged executes a working-tree command with the generic "fatal" rule
// and logs success.
func (c *Client) runLogged(ctx context.Context, success string, args ...string) error {
	if _, err := c.runChecked(ctx, args); err != nil {
		return err
	}
	c.log.Info("%s", success)
	return nil
}
