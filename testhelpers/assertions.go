// Package testhelpers provides testing utilities for gitdeck,
// including a scene system, git repository helpers, and custom assertions.
package testhelpers

import (
	"os/exec"
	"sort"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"
)

// Must panics if err is not nil, otherwise returns val.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// LocalBranches lists the repository's local branches, sorted, by reading
// refs through go-git.
func LocalBranches(t *testing.T, repo *GitRepo) []string {
	t.Helper()

	r, err := gogit.PlainOpen(repo.Dir)
	require.NoError(t, err, "Failed to open repository")

	iter, err := r.Branches()
	require.NoError(t, err, "Failed to list branches")

	branches := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branches = append(branches, ref.Name().Short())
		return nil
	})
	require.NoError(t, err)

	sort.Strings(branches)
	return branches
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	expected = append([]string(nil), expected...)
	sort.Strings(expected)
	require.Equal(t, expected, LocalBranches(t, repo), "Branches do not match")
}

// ExpectCommits asserts that the newest commit subjects on branch match expected.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir, "log", "--format=%s", branch)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	commits := splitLines(string(output))
	require.GreaterOrEqual(t, len(commits), len(expected), "Not enough commits")
	require.Equal(t, expected, commits[:len(expected)], "Commits do not match")
}
