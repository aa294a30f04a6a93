// Package style centralizes the lipgloss styles used by tabular output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	// Header styles column headings.
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	// Dir marks directory entries.
	Dir = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)

	// Index dims listing indices.
	Index = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Warn highlights values past a soft limit.
	Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

var tty = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// Render applies s to text when stdout is a terminal, and returns the
// plain text otherwise, so piped output stays parseable.
func Render(s lipgloss.Style, text string) string {
	if !tty {
		return text
	}
	return s.Render(text)
}
