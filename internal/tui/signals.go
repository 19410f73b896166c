package tui

import "github.com/charmbracelet/lipgloss"

// lineHeightPixels approximates the pixel height of one terminal row.
const lineHeightPixels = 16

// terminalViewport converts a terminal size into pixel units so the
// breakpoint thresholds apply unchanged.
type terminalViewport struct {
	columns         int
	lines           int
	pixelsPerColumn int
}

// Viewport implements ports.ViewportSignal.
func (v terminalViewport) Viewport() (int, int) {
	return v.columns * v.pixelsPerColumn, v.lines * lineHeightPixels
}

// backgroundSignal reports the terminal background as the system theme.
type backgroundSignal struct {
	dark bool
}

// PrefersDark implements ports.SystemThemeSignal.
func (s backgroundSignal) PrefersDark() bool {
	return s.dark
}

// DetectBackground queries the terminal for a dark background.
func DetectBackground() bool {
	return lipgloss.HasDarkBackground()
}
