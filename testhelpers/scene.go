package testhelpers

import (
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene is a test fixture with a temporary directory holding a git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup prepares a scene before the test body runs.
type SceneSetup func(*Scene) error

// RequireGit skips the test when no git binary is on PATH.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}
}

// NewScene creates a repository in a fresh temporary directory. Directories
// are removed by the testing package when the test ends.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	RequireGit(t)

	dir := filepath.Join(t.TempDir(), "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo}
	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// BasicSceneSetup creates a single commit on main.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
