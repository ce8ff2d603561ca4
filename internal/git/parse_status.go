package git

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
)

// statusLine matches "<status>[<second status>]<1-2 spaces><path>".
var statusLine = regexp.MustCompile(`^([A-Z?!])[A-Z?!]?( {1,2})(\S.*)$`)

// ParseStatus parses "git status --porcelain" output. Any line that does not
// have the status shape aborts the whole parse with a *StatusLineError.
func ParseStatus(root, raw string) ([]ChangedFile, error) {
	files := []ChangedFile{}
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimLeft(strings.TrimRight(line, "\r"), " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		m := statusLine.FindStringSubmatch(trimmed)
		if m == nil {
			return nil, gitdeckerrors.NewStatusLineError(line)
		}

		path := m[3]
		if i := strings.LastIndex(path, " -> "); i >= 0 {
			path = path[i+len(" -> "):]
		}
		if strings.HasPrefix(path, `"`) {
			unquoted, err := strconv.Unquote(path)
			if err != nil {
				return nil, gitdeckerrors.NewStatusLineError(line)
			}
			path = unquoted
		}

		files = append(files, ChangedFile{
			Path: filepath.Join(root, filepath.FromSlash(path)),
			Kind: changeKindFor(m[1][0]),
		})
	}
	return files, nil
}

func changeKindFor(status byte) ChangeKind {
	switch status {
	case 'A':
		return ChangeAdded
	case 'M':
		return ChangeModified
	case 'D':
		return ChangeDeleted
	case 'R':
		return ChangeRenamed
	case 'C':
		return ChangeCopied
	case 'U':
		return ChangeUpdatedUnmerged
	case '?':
		return ChangeUntracked
	case '!':
		return ChangeIgnored
	default:
		return ChangeUnknown
	}
}
