package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
	"gitdeck.dev/gitdeck/internal/git"
)

func update(t *testing.T, m CloneModel, msg tea.Msg) (CloneModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(CloneModel)
	require.True(t, ok)
	return model, cmd
}

func event(kind git.ProgressKind, percent int) cloneUpdateMsg {
	return cloneUpdateMsg{Event: git.ProgressEvent{Kind: kind, Percent: percent}}
}

func TestCloneModel(t *testing.T) {
	t.Run("phases advance in order", func(t *testing.T) {
		m := NewCloneModel("src", "dst", nil, nil)
		m, _ = update(t, m, cloneUpdateMsg{Event: git.ProgressEvent{Kind: git.ProgressStarted}})
		m, _ = update(t, m, event(git.ProgressCounting, 40))
		m, _ = update(t, m, event(git.ProgressReceiving, 12))

		require.Equal(t, []ClonePhase{
			{Kind: git.ProgressCounting, Percent: 40, Done: true},
			{Kind: git.ProgressReceiving, Percent: 12},
		}, m.Phases())
		require.Contains(t, m.View(), "Receiving objects")
		require.Contains(t, m.View(), "12%")

		m, _ = update(t, m, event(git.ProgressReceiving, 100))
		require.True(t, m.Phases()[1].Done)
	})

	t.Run("other lines are shown but not counted", func(t *testing.T) {
		m := NewCloneModel("src", "dst", nil, nil)
		m, _ = update(t, m, cloneUpdateMsg{Event: git.ProgressEvent{Kind: git.ProgressOther, Raw: "remote: Enumerating objects: 5"}})
		require.Empty(t, m.Phases())
		require.Contains(t, m.View(), "Enumerating objects")
	})

	t.Run("error ends the view", func(t *testing.T) {
		m := NewCloneModel("src", "dst", nil, nil)
		boom := errors.New("clone failed")
		m, cmd := update(t, m, cloneUpdateMsg{Err: boom})
		require.NotNil(t, cmd)
		require.ErrorIs(t, m.Err(), boom)
		require.Contains(t, m.View(), "clone failed")
	})

	t.Run("stream end completes every phase", func(t *testing.T) {
		m := NewCloneModel("src", "dst", nil, nil)
		m, _ = update(t, m, event(git.ProgressResolving, 50))
		m, _ = update(t, m, cloneFinishedMsg{})
		require.True(t, m.Phases()[0].Done)
		require.Contains(t, m.View(), "Clone complete")
	})

	t.Run("fatal line fails the clone at stream end", func(t *testing.T) {
		m := NewCloneModel("src", "dst", nil, nil)
		m, _ = update(t, m, cloneUpdateMsg{Event: git.ProgressEvent{Kind: git.ProgressOther, Raw: "fatal: repository 'nowhere' does not exist"}})
		require.NoError(t, m.Err())
		m, _ = update(t, m, cloneFinishedMsg{})
		require.ErrorIs(t, m.Err(), gitdeckerrors.ErrOutput)
		require.NotContains(t, m.View(), "Clone complete")
	})

	t.Run("quitting cancels the clone", func(t *testing.T) {
		cancelled := false
		m := NewCloneModel("src", "dst", nil, func() { cancelled = true })
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
		require.True(t, cancelled)
		require.True(t, m.Cancelled())
		require.Empty(t, m.View())
	})

	t.Run("waits on the update channel", func(t *testing.T) {
		updates := make(chan git.CloneUpdate, 1)
		updates <- git.CloneUpdate{Event: git.ProgressEvent{Kind: git.ProgressCounting, Percent: 5}}
		close(updates)

		cmd := waitForCloneUpdate(updates)
		require.Equal(t, event(git.ProgressCounting, 5), cmd())
		require.Equal(t, cloneFinishedMsg{}, cmd())
	})
}

type lines struct{ got []string }

func (l *lines) Info(format string, args ...interface{}) {
	l.got = append(l.got, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func TestRunClonePlain(t *testing.T) {
	updates := make(chan git.CloneUpdate, 8)
	updates <- git.CloneUpdate{Event: git.ProgressEvent{Kind: git.ProgressStarted}}
	updates <- git.CloneUpdate{Event: git.ProgressEvent{Kind: git.ProgressReceiving, Percent: 10}}
	updates <- git.CloneUpdate{Event: git.ProgressEvent{Kind: git.ProgressReceiving, Percent: 100}}
	updates <- git.CloneUpdate{Event: git.ProgressEvent{Kind: git.ProgressReceiving, Percent: 100}}
	close(updates)

	out := &lines{}
	require.NoError(t, RunClonePlain(updates, out))
	require.Equal(t, []string{"⋯ cloning...", "⋯ Receiving objects...", "✓ Receiving objects done"}, out.got)

	failing := make(chan git.CloneUpdate, 1)
	failing <- git.CloneUpdate{Err: context.Canceled}
	close(failing)
	require.ErrorIs(t, RunClonePlain(failing, out), context.Canceled)

	fatal := make(chan git.CloneUpdate, 2)
	fatal <- git.CloneUpdate{Event: git.ProgressEvent{Kind: git.ProgressStarted}}
	fatal <- git.CloneUpdate{Event: git.ProgressEvent{Kind: git.ProgressOther, Raw: "fatal: repository 'nowhere' does not exist"}}
	close(fatal)
	err := RunClonePlain(fatal, out)
	require.ErrorIs(t, err, gitdeckerrors.ErrOutput)
	require.Contains(t, err.Error(), "nowhere")
}

func TestStripComments(t *testing.T) {
	require.Equal(t, "fix parser\n\nbody line", StripComments("fix parser\n\nbody line  \n\n# comment\n  # indented comment\n"))
	require.Empty(t, StripComments("\n# only comments\n"))
}

func TestPromptsRespectNoInteractive(t *testing.T) {
	t.Setenv("GITDECK_NO_INTERACTIVE", "1")

	_, err := PromptBranch("Checkout", []string{"main"}, "main")
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	_, err = PromptCommitMessage()
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	_, err = PromptConfirm("Sure?", false)
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	_, err = EditCommitMessage("")
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	require.False(t, IsTTY())
}
