package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// Chunk is one line of output from an incremental command.
// A chunk with Err set is the last one delivered.
type Chunk struct {
	Text string
	Err  error
}

// CommandRunner executes git in a working directory and captures combined
// stdout and stderr. Arguments are passed as an argv list, never through a shell.
type CommandRunner interface {
	// Run executes a command to completion. It fails only when the process
	// could not be started or the context ended; a non-zero exit status
	// still returns the output with a nil error.
	Run(ctx context.Context, dir string, args ...string) (string, error)

	// RunIncremental starts a command and delivers its output line by line.
	// The channel is closed when the process exits or ctx is cancelled.
	RunIncremental(ctx context.Context, dir string, args ...string) <-chan Chunk
}

// ExecRunner runs the system git binary.
type ExecRunner struct {
	// Git is the git binary to execute. Defaults to "git" when empty.
	Git string

	// Timeout bounds commands whose context has no deadline. When zero,
	// DefaultCommandTimeout is used.
	Timeout time.Duration

	// Env is appended to the process environment.
	Env []string
}

// NewExecRunner returns an ExecRunner that forces the C locale so that
// output phrases are stable across user settings.
func NewExecRunner(gitBinary string, timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		Git:     gitBinary,
		Timeout: timeout,
		Env:     []string{"LC_ALL=C", "GIT_TERMINAL_PROMPT=0"},
	}
}

func (r *ExecRunner) gitBinary() string {
	if r.Git == "" {
		return "git"
	}
	return r.Git
}

func (r *ExecRunner) timeoutValue() time.Duration {
	if r.Timeout <= 0 {
		return DefaultCommandTimeout
	}
	return r.Timeout
}

func (r *ExecRunner) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeoutValue())
}

func (r *ExecRunner) command(dir string, args []string) *exec.Cmd {
	// The context is enforced by terminateProcessGroup, not CommandContext,
	// so that the whole group dies and not only the direct child.
	cmd := exec.Command(r.gitBinary(), args...) // #nosec G204 -- argv list, no shell
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	setProcessGroup(cmd)
	return cmd
}

// Run executes git and returns its combined output
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return "", gitdeckerrors.NewGitCommandError(r.gitBinary(), args, dir, "", err)
	}

	cmd := r.command(dir, args)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Start(); err != nil {
		return "", gitdeckerrors.NewGitCommandError(r.gitBinary(), args, dir, output.String(), err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		terminateProcessGroup(cmd)
		<-done
		return output.String(), gitdeckerrors.NewGitCommandError(r.gitBinary(), args, dir, output.String(), ctx.Err())
	case err := <-done:
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			return output.String(), gitdeckerrors.NewGitCommandError(r.gitBinary(), args, dir, output.String(), err)
		}
	}

	return output.String(), nil
}

// RunIncremental executes git and streams its combined output line by line
func (r *ExecRunner) RunIncremental(ctx context.Context, dir string, args ...string) <-chan Chunk {
	out := make(chan Chunk)

	go func() {
		defer close(out)

		// Streams are long running; only the caller's context bounds them.
		if ctx == nil {
			ctx = context.Background()
		}

		pr, pw := io.Pipe()
		cmd := r.command(dir, args)
		cmd.Stdout = pw
		cmd.Stderr = pw

		if err := cmd.Start(); err != nil {
			_ = pw.Close()
			send(ctx, out, Chunk{Err: gitdeckerrors.NewGitCommandError(r.gitBinary(), args, dir, "", err)})
			return
		}

		waitErr := make(chan error, 1)
		go func() {
			err := cmd.Wait()
			_ = pw.CloseWithError(err)
			waitErr <- err
		}()

		stop := context.AfterFunc(ctx, func() {
			terminateProcessGroup(cmd)
		})
		defer stop()

		scanner := bufio.NewScanner(pr)
		scanner.Split(scanProgressLines)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), " ")
			if line == "" {
				continue
			}
			if !send(ctx, out, Chunk{Text: line}) {
				terminateProcessGroup(cmd)
				_ = pr.Close()
				<-waitErr
				return
			}
		}
		scanErr := scanner.Err()
		_ = pr.Close()
		err := <-waitErr

		if ctx.Err() != nil {
			return
		}
		if scanErr != nil {
			var exitErr *exec.ExitError
			if !errors.As(scanErr, &exitErr) {
				send(ctx, out, Chunk{Err: scanErr})
			}
			return
		}
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			send(ctx, out, Chunk{Err: err})
		}
	}()

	return out
}

// send delivers a chunk unless the context ends first.
func send(ctx context.Context, out chan<- Chunk, c Chunk) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case out <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

// scanProgressLines splits on '\n' or '\r'. git redraws progress lines
// with carriage returns, so each redraw becomes its own line.
func scanProgressLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
