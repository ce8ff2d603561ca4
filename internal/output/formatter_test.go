package output

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitdeck.dev/gitdeck/internal/git"
)

func newTestFormatter(root string) *Formatter {
	return NewFormatter(NewRenderer(&bytes.Buffer{}), root)
}

func TestFormatterBranches(t *testing.T) {
	f := newTestFormatter("")
	out := f.Branches([]string{"feature", "main", "remotes/origin/main"}, "main")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "feature")
	require.Contains(t, lines[1], "* main")
	require.Contains(t, lines[2], "remotes/origin/main")
}

func TestFormatterChangedFiles(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "repo")
	f := newTestFormatter(root)

	out := f.ChangedFiles([]git.ChangedFile{
		{Path: filepath.Join(root, "src", "app.go"), Kind: git.ChangeModified},
		{Path: filepath.Join(root, "notes.txt"), Kind: git.ChangeUntracked},
	})
	require.Contains(t, out, "modified")
	require.Contains(t, out, filepath.Join("src", "app.go"))
	require.Contains(t, out, "untracked")
	require.NotContains(t, out, root+string(filepath.Separator))

	require.Contains(t, f.ChangedFiles(nil), "working tree clean")
}

func TestFormatterCommits(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	f := newTestFormatter("")
	f.now = func() time.Time { return now }

	out := f.Commits([]git.Commit{
		{ShortHash: "a1b2c3d", Subject: "fix parser", AuthorName: "Ann", AuthoredAt: now.Add(-3 * time.Hour)},
		{ShortHash: "e4f5a6b", Subject: "init", AuthorName: "Bob", AuthoredAt: now.Add(-24 * time.Hour)},
		{ShortHash: "c7d8e9f", Subject: "ancient", AuthorName: "Cy", AuthoredAt: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
	})

	require.Contains(t, out, "a1b2c3d")
	require.Contains(t, out, "fix parser")
	require.Contains(t, out, "<Ann>")
	require.Contains(t, out, "3 hours ago")
	require.Contains(t, out, "1 day ago")
	require.Contains(t, out, "2020-01-02")
	require.Empty(t, f.Commits(nil))
}
