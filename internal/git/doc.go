// Package git drives the git binary for one working directory.
//
// It provides:
//   - A CommandRunner that executes git with an argv list, synchronously or as a line stream
//   - Pure parsers for branch lists, short status, commit history and clone progress
//   - A single output classifier separating failures from benign output
//   - A Client exposing branch, remote and working tree operations
//   - An observable Store with the current branch and branch lists
//
// This package should be the only place where git commands are executed.
package git
