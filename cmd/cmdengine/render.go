package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/cmdengine/internal/history"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func header(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render("== "+title+" =="))
}

func step(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, stepStyle.Render(fmt.Sprintf(format, args...)))
}

func failure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// renderHistory prints the undo stack, most recent first, with aligned
// descriptions.
func renderHistory(w io.Writer, m *history.Manager) {
	entries := m.Entries()
	fmt.Fprintf(w, "Undo stack (%d commands):\n", len(entries))

	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Description))
	}
	for i, e := range entries {
		fmt.Fprintf(w, "  %2d. %s  %s\n", i+1,
			runewidth.FillRight(e.Description, width),
			dimStyle.Render(e.Timestamp.Format("15:04:05.000")))
	}
	if m.CanRedo() {
		fmt.Fprintf(w, "Redo stack: %d commands\n", m.RedoCount())
	}
}
