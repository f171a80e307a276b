package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/varsilias/openclaw-setup/internal/theme"
)

type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	dim    lipgloss.Color
	bubble lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Light: {accent: "#2563EB", text: "#111827", dim: "#6B7280", bubble: "#E5E7EB"},
	theme.Dark:  {accent: "#3B82F6", text: "#F3F4F6", dim: "#9CA3AF", bubble: "#374151"},
}

type styles struct {
	header   lipgloss.Style
	offer    lipgloss.Style
	user     lipgloss.Style
	model    lipgloss.Style
	thinking lipgloss.Style
	help     lipgloss.Style
	status   lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := palettes[t]
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.accent).
			Padding(0, 1),
		offer:    lipgloss.NewStyle().Foreground(p.text).Padding(0, 1),
		user:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(p.accent).Padding(0, 1),
		model:    lipgloss.NewStyle().Foreground(p.text).Border(lipgloss.RoundedBorder()).BorderForeground(p.bubble).Padding(0, 1),
		thinking: lipgloss.NewStyle().Foreground(p.dim).Italic(true),
		help:     lipgloss.NewStyle().Foreground(p.dim),
		status:   lipgloss.NewStyle().Foreground(p.accent),
	}
}
