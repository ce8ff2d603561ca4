// Package runtime provides the execution context for gitdeck commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// git client, the logger, the resolved settings and the repository root.
package runtime
