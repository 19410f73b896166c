package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tablepick/internal/theme"
)

type palette struct {
	text      lipgloss.Color
	muted     lipgloss.Color
	accent    lipgloss.Color
	cell      lipgloss.Color
	active    lipgloss.Color
	hovered   lipgloss.Color
	border    lipgloss.Color
	statusBar lipgloss.Color
}

var (
	lightPalette = palette{
		text:      lipgloss.Color("#111827"),
		muted:     lipgloss.Color("#6b7280"),
		accent:    lipgloss.Color("#2563eb"),
		cell:      lipgloss.Color("#d1d5db"),
		active:    lipgloss.Color("#3b82f6"),
		hovered:   lipgloss.Color("#1d4ed8"),
		border:    lipgloss.Color("#9ca3af"),
		statusBar: lipgloss.Color("#7c3aed"),
	}
	darkPalette = palette{
		text:      lipgloss.Color("#f3f4f6"),
		muted:     lipgloss.Color("#9ca3af"),
		accent:    lipgloss.Color("#60a5fa"),
		cell:      lipgloss.Color("#4b5563"),
		active:    lipgloss.Color("#60a5fa"),
		hovered:   lipgloss.Color("#93c5fd"),
		border:    lipgloss.Color("#6b7280"),
		statusBar: lipgloss.Color("#a78bfa"),
	}
)

type styles struct {
	title   lipgloss.Style
	cell    lipgloss.Style
	active  lipgloss.Style
	hovered lipgloss.Style
	footer  lipgloss.Style
	status  lipgloss.Style
	muted   lipgloss.Style
	frame   lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := lightPalette
	if t == theme.Dark {
		p = darkPalette
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		cell:    lipgloss.NewStyle().Foreground(p.cell),
		active:  lipgloss.NewStyle().Foreground(p.active),
		hovered: lipgloss.NewStyle().Foreground(p.hovered).Bold(true),
		footer:  lipgloss.NewStyle().Foreground(p.text).Bold(true),
		status:  lipgloss.NewStyle().Foreground(p.statusBar),
		muted:   lipgloss.NewStyle().Foreground(p.muted),
		frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
	}
}
