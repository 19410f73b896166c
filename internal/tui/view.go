package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tablepick/internal/layout"
)

const (
	emptySelectionText = "0 × 0"
	fillActive         = "■"
	fillIdle           = "·"
)

// View renders the grid, footer and key help. The title names the hovered
// cell so it is announced even with the footer hidden.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := newStyles(m.ctrl.EffectiveTheme())
	cfg := m.ctrl.Config()

	title := cfg.AriaLabel
	if cell, ok := m.ctrl.HoveredCell(); ok {
		title += " · " + layout.CellAriaLabel(cell.Row, cell.Col)
	}
	sections := []string{st.title.Render(title), m.renderGrid(st)}

	if cfg.ShowFooter {
		text := m.ctrl.SelectionText()
		if text == "" {
			text = emptySelectionText
		}
		sections = append(sections, st.footer.Render(text))
		if sr := m.ctrl.ScreenReaderText(); sr != "" {
			sections = append(sections, st.muted.Render(sr))
		}
	}
	if status := m.state.status; status != "" {
		sections = append(sections, st.status.Render(status))
	}

	frame := st.frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.JoinVertical(lipgloss.Left, frame, m.help.View(m.keys))
}

func (m Model) renderGrid(st styles) string {
	dims := m.ctrl.Dimensions()
	cw := m.cellColumns()
	hovered, hasHover := m.ctrl.HoveredCell()

	gap := strings.Repeat(" ", cellGap)
	lines := make([]string, 0, dims.Rows)
	for r := 1; r <= dims.Rows; r++ {
		cells := make([]string, 0, dims.Cols)
		for c := 1; c <= dims.Cols; c++ {
			cell := layout.Cell{Row: r, Col: c}
			cells = append(cells, renderCell(st, cw, m.ctrl.IsCellActive(cell), hasHover && cell == hovered))
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	return strings.Join(lines, "\n")
}

func renderCell(st styles, width int, active, hovered bool) string {
	fill := fillIdle
	style := st.cell
	switch {
	case hovered:
		fill = fillActive
		style = st.hovered
	case active:
		fill = fillActive
		style = st.active
	}
	return style.Render("[" + strings.Repeat(fill, width-2) + "]")
}
