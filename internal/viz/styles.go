package viz

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are derived from the current theme on every render so theme
// cycling takes effect immediately.
type styles struct {
	header  lipgloss.Style
	board   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	warn    lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
}

func themedStyles(t Theme) styles {
	return styles{
		header:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		board:   lipgloss.NewStyle().Foreground(t.Primary).Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(t.Muted),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		running: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		paused:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		warn:    lipgloss.NewStyle().Foreground(t.Warning),
		graph:   lipgloss.NewStyle().Foreground(t.Secondary),
		help:    lipgloss.NewStyle().Foreground(t.Muted),
	}
}
