// Package tui provides the interactive terminal pieces of gitdeck: the
// clone progress view, branch and commit prompts, and TTY detection.
package tui
