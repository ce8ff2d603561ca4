// Package errors provides sentinel errors and custom error types for the gitdeck application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// NotARepositorySentinel is the fragment git prints when the working
// directory is not a checkout. Its presence wins over every other rule.
const NotARepositorySentinel = "fatal: not a git repository"

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not a git checkout
	ErrNotARepository = errors.New("not a git repository")

	// ErrOutput indicates that git output was classified as a failure
	ErrOutput = errors.New("git output error")

	// ErrStatusLine indicates that a status line could not be decoded
	ErrStatusLine = errors.New("malformed status line")
)

// OutputError carries the raw git output that was classified as a failure.
type OutputError struct {
	Raw string
}

func (e *OutputError) Error() string {
	if e.Raw == "" {
		return "git output error"
	}
	return fmt.Sprintf("git output error: %s", e.Raw)
}

// Is returns true if the target error is ErrOutput
func (e *OutputError) Is(target error) bool {
	return target == ErrOutput
}

// NewOutputError creates a new OutputError
func NewOutputError(raw string) *OutputError {
	return &OutputError{Raw: raw}
}

// StatusLineError represents a status line that did not have the
// "<status> <path>" shape. It aborts the whole status query.
type StatusLineError struct {
	Line string
}

func (e *StatusLineError) Error() string {
	return fmt.Sprintf("malformed status line %q", e.Line)
}

// Is returns true if the target error is ErrStatusLine
func (e *StatusLineError) Is(target error) bool {
	return target == ErrStatusLine
}

// NewStatusLineError creates a new StatusLineError
func NewStatusLineError(line string) *StatusLineError {
	return &StatusLineError{Line: line}
}

// GitCommandError represents a failure to launch or wait for a git process.
// Non-zero exit codes are not reported this way; their output is classified instead.
type GitCommandError struct {
	Command string
	Args    []string
	Dir     string
	Output  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Dir != "" {
		msg += fmt.Sprintf(" (in %s)", e.Dir)
	}
	if e.Output != "" {
		msg += fmt.Sprintf("\noutput: %s", e.Output)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, dir, output string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Dir:     dir,
		Output:  output,
		Err:     err,
	}
}
