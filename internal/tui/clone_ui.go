package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gitdeckerrors "gitdeck.dev/gitdeck/internal/errors"
	"gitdeck.dev/gitdeck/internal/git"
)

var phaseLabels = map[git.ProgressKind]string{
	git.ProgressCounting:    "Counting objects",
	git.ProgressCompressing: "Compressing objects",
	git.ProgressReceiving:   "Receiving objects",
	git.ProgressResolving:   "Resolving deltas",
}

// ClonePhase is one percentage phase of a clone, in order of first appearance
type ClonePhase struct {
	Kind    git.ProgressKind
	Percent int
	Done    bool
}

// CloneModel is the bubbletea model for clone progress
type CloneModel struct {
	source    string
	target    string
	phases    []ClonePhase
	started   bool
	lastRaw   string
	failure   string
	err       error
	done      bool
	quitting  bool
	updates   <-chan git.CloneUpdate
	cancel    func()
	spinner   spinner.Model
	bar       progress.Model
	styles    cloneStyles
	lineWidth int
}

type cloneStyles struct {
	titleStyle lipgloss.Style
	doneStyle  lipgloss.Style
	errorStyle lipgloss.Style
	dimStyle   lipgloss.Style
	labelStyle lipgloss.Style
}

// cloneUpdateMsg carries one update from the clone stream
type cloneUpdateMsg git.CloneUpdate

// cloneFinishedMsg is sent when the clone stream closes
type cloneFinishedMsg struct{}

// NewCloneModel creates a clone progress model reading from updates.
// cancel is called when the user quits before the clone ends.
func NewCloneModel(source, target string, updates <-chan git.CloneUpdate, cancel func()) CloneModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return CloneModel{
		source:    source,
		target:    target,
		updates:   updates,
		cancel:    cancel,
		spinner:   s,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		lineWidth: 72,
		styles: cloneStyles{
			titleStyle: lipgloss.NewStyle().Bold(true),
			doneStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			dimStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		},
	}
}

// Init initializes the bubbletea model
func (m CloneModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForCloneUpdate(m.updates))
}

// waitForCloneUpdate blocks until the next update or the end of the stream
func waitForCloneUpdate(updates <-chan git.CloneUpdate) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return cloneFinishedMsg{}
		}
		return cloneUpdateMsg(u)
	}
}

// Update handles message updates for the bubbletea model
func (m CloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == KeyCtrlC || msg.String() == KeyQuit {
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.lineWidth = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case cloneUpdateMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.done = true
			return m, tea.Quit
		}
		m.apply(msg.Event)
		return m, waitForCloneUpdate(m.updates)

	case cloneFinishedMsg:
		m.done = true
		if m.failure != "" {
			m.err = gitdeckerrors.NewOutputError(m.failure)
			return m, tea.Quit
		}
		for i := range m.phases {
			m.phases[i].Done = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// apply folds one progress event into the model. A new phase completes
// every phase before it.
func (m *CloneModel) apply(ev git.ProgressEvent) {
	switch {
	case ev.Kind == git.ProgressStarted:
		m.started = true
	case ev.HasPercent():
		idx := -1
		for i, p := range m.phases {
			if p.Kind == ev.Kind {
				idx = i
				break
			}
		}
		if idx < 0 {
			for i := range m.phases {
				m.phases[i].Done = true
			}
			m.phases = append(m.phases, ClonePhase{Kind: ev.Kind})
			idx = len(m.phases) - 1
		}
		m.phases[idx].Percent = ev.Percent
		if ev.Percent >= 100 {
			m.phases[idx].Done = true
		}
	default:
		m.lastRaw = ev.Raw
		if isFatal(ev) {
			m.failure = ev.Raw
		}
	}
}

// Phases returns the phases seen so far
func (m CloneModel) Phases() []ClonePhase {
	return append([]ClonePhase(nil), m.phases...)
}

// Err returns the error that ended the clone, if any
func (m CloneModel) Err() error {
	return m.err
}

// Cancelled reports whether the user quit before the clone ended
func (m CloneModel) Cancelled() bool {
	return m.quitting
}

// View renders the TUI
func (m CloneModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.titleStyle.Render(fmt.Sprintf("Cloning %s into %s", m.source, m.target)))
	b.WriteString("\n\n")

	if !m.started && len(m.phases) == 0 && !m.done {
		b.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), m.styles.dimStyle.Render("connecting...")))
	}

	for _, p := range m.phases {
		label := m.styles.labelStyle.Render(fmt.Sprintf("%-20s", phaseLabels[p.Kind]))
		if p.Done {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", m.styles.doneStyle.Render("✓"), label, m.styles.doneStyle.Render("done")))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %3d%%\n", m.spinner.View(), label, m.bar.ViewAs(float64(p.Percent)/100), p.Percent))
	}

	if m.lastRaw != "" && !m.done {
		b.WriteString("  " + m.styles.dimStyle.Render(truncate(m.lastRaw, m.lineWidth-2)) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.errorStyle.Render("✗ "+m.err.Error()) + "\n")
	} else if m.done {
		b.WriteString("\n" + m.styles.doneStyle.Render("✓ Clone complete") + "\n")
	}

	return b.String()
}

func truncate(s string, width int) string {
	if width <= 1 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

// RunCloneTUI shows clone progress until the stream ends or the user quits.
// It returns the clone's terminal error, or context.Canceled when the user
// quit.
func RunCloneTUI(source, target string, updates <-chan git.CloneUpdate, cancel func()) error {
	m := NewCloneModel(source, target, updates, cancel)
	program := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	final, err := program.Run()
	if err != nil {
		if cancel != nil {
			cancel()
		}
		drain(updates)
		return err
	}

	model, ok := final.(CloneModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if model.Cancelled() {
		drain(updates)
		return context.Canceled
	}
	return model.Err()
}

// drain discards the rest of a stream so its producer can exit
func drain(updates <-chan git.CloneUpdate) {
	for range updates {
	}
}
