package runtime

import (
	"context"
	"fmt"

	"gitdeck.dev/gitdeck/internal/config"
	"gitdeck.dev/gitdeck/internal/git"
	"gitdeck.dev/gitdeck/internal/output"
)

// Context provides access to the client and output for commands
type Context struct {
	Client   *git.Client
	Splog    *output.Splog
	Settings config.Settings
	RepoRoot string
}

// Options controls how a Context is built
type Options struct {
	// RepoPath is any path inside the repository, or the directory to bind
	// to when it is not inside one. Defaults to the working directory.
	RepoPath string

	// Splog receives client messages. Defaults to a console logger.
	Splog *output.Splog

	// Runner overrides the git runner built from the settings.
	Runner git.CommandRunner
}

// NewContext resolves the repository, loads its settings and constructs the
// client. Construction never fails because the directory is not a
// repository; individual commands report that.
func NewContext(ctx context.Context, opts Options) (*Context, error) {
	path := opts.RepoPath
	if path == "" {
		path = "."
	}
	repoRoot, err := git.ResolveRepoDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository: %w", err)
	}

	settings, err := config.Load(repoRoot)
	if err != nil {
		return nil, err
	}

	splog := opts.Splog
	if splog == nil {
		splog = output.NewSplog()
	}

	runner := opts.Runner
	if runner == nil {
		runner = git.NewExecRunner(settings.GitBinary, settings.CommandTimeout)
	}

	client, err := git.NewClient(ctx, repoRoot, runner,
		git.WithLogger(splog),
		git.WithRemote(settings.Remote),
	)
	if err != nil {
		return nil, err
	}

	return &Context{
		Client:   client,
		Splog:    splog,
		Settings: settings,
		RepoRoot: repoRoot,
	}, nil
}

// ForTarget builds a context bound to a directory that does not exist yet,
// such as a clone destination. It shares the settings and logger of c.
func (c *Context) ForTarget(ctx context.Context, dir string, runner git.CommandRunner) (*Context, error) {
	if runner == nil {
		runner = git.NewExecRunner(c.Settings.GitBinary, c.Settings.CommandTimeout)
	}
	client, err := git.NewClient(ctx, dir, runner,
		git.WithLogger(c.Splog),
		git.WithRemote(c.Settings.Remote),
	)
	if err != nil {
		return nil, err
	}
	return &Context{
		Client:   client,
		Splog:    c.Splog,
		Settings: c.Settings,
		RepoRoot: client.Dir(),
	}, nil
}
