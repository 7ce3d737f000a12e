// Package render centralizes terminal styling and markdown rendering.
package render

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles used across the CLI and the TUI.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Pending lipgloss.Style
	Muted   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Markdown renders markdown for the terminal. It falls back to the raw
// text when glamour errors or panics, so a broken hint never takes the
// tool down.
func Markdown(content string, width int) (out string) {
	out = content
	defer func() {
		if r := recover(); r != nil {
			out = content
		}
	}()
	if content == "" {
		return content
	}
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
