package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	noMatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// setupColor turns colour off unless w is a terminal and colour is wanted.
func setupColor(w io.Writer, noColor bool) {
	f, ok := w.(*os.File)
	if noColor || !ok || !isatty.IsTerminal(f.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// renderResult renders a match result.
func renderResult(matched bool) string {
	if matched {
		return matchStyle.Render("true")
	}
	return noMatchStyle.Render("false")
}
