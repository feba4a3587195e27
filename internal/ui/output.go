// Package ui renders console output and reads answers to prompts.
package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the per-file summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// Title prints a bold heading line.
func Title(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

// Info prints a muted line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a line prefixed with a check mark.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// Failure prints a line prefixed with a cross.
func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("✗"), fmt.Sprintf(format, args...))
}

// Summary describes one converted file.
type Summary struct {
	Input    string
	Output   string
	Subjects int
	Dividers int
}

// FormatSummary renders the boxed result of a conversion.
func FormatSummary(w io.Writer, s Summary) {
	content := fmt.Sprintf("%s\n%s %s\n%s %s\n%s %d  %s %d",
		titleStyle.Render("Conversion Complete"),
		dimStyle.Render("Source:"), filepath.Base(s.Input),
		dimStyle.Render("CSV:"), s.Output,
		dimStyle.Render("Subjects:"), s.Subjects,
		dimStyle.Render("Dividers:"), s.Dividers,
	)
	fmt.Fprintln(w, boxStyle.Render(content))
}

// Menu prints a numbered list of options under a heading.
func Menu(w io.Writer, heading string, options []string) {
	fmt.Fprintln(w)
	Title(w, heading)
	for _, o := range options {
		fmt.Fprintln(w, o)
	}
}
