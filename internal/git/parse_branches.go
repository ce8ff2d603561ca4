package git

import (
	"strings"

	"github.com/samber/lo"
)

// ParseBranchName trims the output of "rev-parse --abbrev-ref HEAD"
func ParseBranchName(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseBranches parses "git branch --list [--all]" output into branch names,
// in the order git reported them.
func ParseBranches(raw string) []string {
	return lo.FilterMap(strings.Split(raw, "\n"), func(line string, _ int) (string, bool) {
		line = strings.TrimRight(line, "\r ")
		if len(line) >= 2 && (line[0] == '*' || line[0] == '+') && line[1] == ' ' {
			line = line[2:]
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			return "", false
		case strings.HasPrefix(line, "("):
			// (HEAD detached at 1a2b3c4), (no branch, rebasing main)
			return "", false
		case strings.Contains(line, " -> "):
			// remotes/origin/HEAD -> origin/main
			return "", false
		}
		return line, true
	})
}
