package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/rxxuzi/luka/internal/pathlist"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

// outcomeColor maps a path outcome to its status-line color.
func outcomeColor(o pathlist.Outcome) *color.Color {
	switch o {
	case pathlist.OutcomeAdded, pathlist.OutcomePersisted, pathlist.OutcomeRemoved:
		return successColor
	case pathlist.OutcomeSkipped, pathlist.OutcomeAlreadyPersisted, pathlist.OutcomeNotFound:
		return warningColor
	case pathlist.OutcomeError:
		return errorColor
	default:
		return infoColor
	}
}

// PrintReport prints one tagged status line per report to stderr. Stdout
// is reserved for evaluable output, and the tags are stable so driving
// scripts can parse results.
func PrintReport(r pathlist.Report) {
	c := outcomeColor(r.Outcome)
	if r.Err != nil {
		_, _ = c.Fprintf(os.Stderr, "%s %s: %v\n", r.Outcome.Tag(), r.Path, r.Err)
		return
	}
	_, _ = c.Fprintf(os.Stderr, "%s %s\n", r.Outcome.Tag(), r.Path)
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message to stderr.
func PrintInfo(msg string) {
	_, _ = infoColor.Fprintln(os.Stderr, msg)
}

// PrintDim prints a de-emphasized message to stderr.
func PrintDim(msg string) {
	_, _ = dimColor.Fprintln(os.Stderr, msg)
}

// Countf is a small helper for singular/plural phrasing.
func Countf(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
