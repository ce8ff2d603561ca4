package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitdeck.dev/gitdeck/internal/git"
)

// NewRenderer returns a lipgloss renderer for w. Colour is disabled when
// NO_COLOR is set or w is not a terminal.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styles groups the styles used by the formatters
type Styles struct {
	Current  lipgloss.Style
	Branch   lipgloss.Style
	Remote   lipgloss.Style
	Hash     lipgloss.Style
	Author   lipgloss.Style
	Dim      lipgloss.Style
	Added    lipgloss.Style
	Modified lipgloss.Style
	Deleted  lipgloss.Style
	Conflict lipgloss.Style
	Other    lipgloss.Style
}

// NewStyles builds the palette on r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Current:  r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Branch:   r.NewStyle().Foreground(lipgloss.Color("12")),
		Remote:   r.NewStyle().Foreground(lipgloss.Color("5")),
		Hash:     r.NewStyle().Foreground(lipgloss.Color("3")),
		Author:   r.NewStyle().Foreground(lipgloss.Color("4")),
		Dim:      r.NewStyle().Foreground(lipgloss.Color("8")),
		Added:    r.NewStyle().Foreground(lipgloss.Color("2")),
		Modified: r.NewStyle().Foreground(lipgloss.Color("3")),
		Deleted:  r.NewStyle().Foreground(lipgloss.Color("1")),
		Conflict: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Other:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ChangeStyle picks the style for a change kind
func (s Styles) ChangeStyle(kind git.ChangeKind) lipgloss.Style {
	switch kind {
	case git.ChangeAdded, git.ChangeUntracked:
		return s.Added
	case git.ChangeModified, git.ChangeRenamed, git.ChangeCopied:
		return s.Modified
	case git.ChangeDeleted:
		return s.Deleted
	case git.ChangeUpdatedUnmerged:
		return s.Conflict
	default:
		return s.Other
	}
}
