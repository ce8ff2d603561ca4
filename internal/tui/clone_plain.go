package tui

import (
	"strings"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
	"gitdeck.dev/gitdeck/internal/git"
)

// Printer is the subset of the logger used for plain progress output
type Printer interface {
	Info(format string, args ...interface{})
}

// RunClonePlain prints clone progress as lines for non-TTY environments.
// Each phase is reported when it first appears and when it reaches 100%.
// A "fatal:" line from git fails the clone once the stream ends.
func RunClonePlain(updates <-chan git.CloneUpdate, out Printer) error {
	reported := map[git.ProgressKind]int{}
	failure := ""
	for u := range updates {
		if u.Err != nil {
			return u.Err
		}
		ev := u.Event
		switch {
		case ev.Kind == git.ProgressStarted:
			out.Info("  ⋯ cloning...")
		case ev.HasPercent():
			last, seen := reported[ev.Kind]
			if !seen {
				out.Info("  ⋯ %s...", phaseLabels[ev.Kind])
			}
			if ev.Percent >= 100 && last < 100 {
				out.Info("  ✓ %s done", phaseLabels[ev.Kind])
			}
			reported[ev.Kind] = ev.Percent
		case isFatal(ev):
			failure = ev.Raw
		}
	}
	if failure != "" {
		return gitdeckerrors.NewOutputError(failure)
	}
	return nil
}

func isFatal(ev git.ProgressEvent) bool {
	return ev.Kind == git.ProgressOther && strings.HasPrefix(ev.Raw, "fatal:")
}
