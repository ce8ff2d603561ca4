package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"gitdeck.dev/gitdeck/internal/git"
)

// Formatter renders repository data for the terminal
type Formatter struct {
	styles Styles
	root   string
	now    func() time.Time
}

// NewFormatter returns a formatter that prints paths relative to root
func NewFormatter(r *lipgloss.Renderer, root string) *Formatter {
	return &Formatter{
		styles: NewStyles(r),
		root:   root,
		now:    time.Now,
	}
}

// Branches renders one branch per line, marking current
func (f *Formatter) Branches(names []string, current string) string {
	lines := lo.Map(names, func(name string, _ int) string {
		switch {
		case name == current:
			return f.styles.Current.Render("* " + name)
		case strings.HasPrefix(name, "remotes/"):
			return "  " + f.styles.Remote.Render(name)
		default:
			return "  " + f.styles.Branch.Render(name)
		}
	})
	return joinLines(lines)
}

// ChangedFiles renders one "<kind> <path>" line per file, with paths
// relative to the repository root.
func (f *Formatter) ChangedFiles(files []git.ChangedFile) string {
	if len(files) == 0 {
		return f.styles.Dim.Render("nothing to commit, working tree clean") + "\n"
	}
	width := lo.Max(lo.Map(files, func(cf git.ChangedFile, _ int) int {
		return len(cf.Kind.String())
	}))

	lines := lo.Map(files, func(cf git.ChangedFile, _ int) string {
		label := fmt.Sprintf("%-*s", width, cf.Kind.String())
		return f.styles.ChangeStyle(cf.Kind).Render(label) + "  " + f.relative(cf.Path)
	})
	return joinLines(lines)
}

// Commits renders a compact history, one commit per line
func (f *Formatter) Commits(commits []git.Commit) string {
	lines := lo.Map(commits, func(c git.Commit, _ int) string {
		return fmt.Sprintf("%s %s %s %s",
			f.styles.Hash.Render(c.ShortHash),
			c.Subject,
			f.styles.Author.Render("<"+c.AuthorName+">"),
			f.styles.Dim.Render("("+f.age(c.AuthoredAt)+")"),
		)
	})
	return joinLines(lines)
}

func (f *Formatter) relative(path string) string {
	if f.root == "" {
		return path
	}
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return path
	}
	return rel
}

// age renders a coarse relative time such as "3 days ago"
func (f *Formatter) age(t time.Time) string {
	d := f.now().Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	default:
		return t.Format("2006-01-02")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
