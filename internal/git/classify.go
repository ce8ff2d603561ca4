package git

import (
	"strings"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
)

// Classify decides whether raw git output is a success.
//
// The not-a-repository sentinel wins over everything else. When expected
// phrases are given, at least one must appear. Without expected phrases,
// the substring "fatal" anywhere in the output is a failure.
func Classify(raw string, expected ...string) error {
	if strings.Contains(raw, gitdeckerrors.NotARepositorySentinel) {
		return gitdeckerrors.ErrNotARepository
	}

	if len(expected) > 0 {
		for _, phrase := range expected {
			if strings.Contains(raw, phrase) {
				return nil
			}
		}
		return gitdeckerrors.NewOutputError(raw)
	}

	if strings.Contains(raw, "fatal") {
		return gitdeckerrors.NewOutputError(raw)
	}
	return nil
}

// classifySentinelOnly applies only the not-a-repository rule. Used where
// any other output, including conflict text, counts as success.
func classifySentinelOnly(raw string) error {
	if strings.Contains(raw, gitdeckerrors.NotARepositorySentinel) {
		return gitdeckerrors.ErrNotARepository
	}
	return nil
}
