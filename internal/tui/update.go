package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tablepick/internal/config"
	"github.com/alexisbeaulieu97/tablepick/internal/gesture"
)

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.sized {
			m.sized = true
			m.applyViewport()
			return m, nil
		}
		token := m.resize.Mark()
		return m, tea.Tick(m.resize.Duration(), func(time.Time) tea.Msg {
			return viewportSettledMsg{token: token}
		})

	case viewportSettledMsg:
		if m.resize.Settled(msg.token) {
			m.applyViewport()
		}
		return m, nil

	case SystemThemeMsg:
		m.ctrl.SyncSignals(nil, backgroundSignal{dark: msg.Dark})
		return m, nil

	case ConfigReloadedMsg:
		if msg.File != nil {
			m.reload(msg.File)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// reload applies a re-read configuration. Keys that only take effect at
// startup are logged and left alone.
func (m *Model) reload(f *config.File) {
	rt := f.Runtime()
	deferred := m.ctrl.Reconfigure(f.Layout(), rt.ShrinkThreshold)
	if rt.Touch != m.runtime.Touch {
		deferred = append(deferred, "touch")
	}
	if rt.PixelsPerColumn > 0 {
		m.runtime.PixelsPerColumn = rt.PixelsPerColumn
	}
	m.runtime.ShrinkThreshold = rt.ShrinkThreshold

	if len(deferred) > 0 {
		m.logf("config keys need a restart", "keys", strings.Join(deferred, ","))
	}
	if m.sized {
		m.applyViewport()
		return
	}
	m.relayout()
}

func (m *Model) applyViewport() {
	changed := m.ctrl.SyncSignals(terminalViewport{
		columns:         m.width,
		lines:           m.height,
		pixelsPerColumn: m.runtime.PixelsPerColumn,
	}, nil)
	if changed {
		m.logf("viewport breakpoint changed", "breakpoint", m.ctrl.Responsive().Breakpoint().String())
	}
	m.relayout()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.runtime.Touch {
		m.handleTouch(msg)
	} else {
		m.handlePointer(msg)
	}
	m.relayout()
	return m.afterInput()
}

// handlePointer treats motion as hover and a left press as a click.
func (m *Model) handlePointer(msg tea.MouseMsg) {
	row, col, onCell := m.hits.CellAt(msg.X, msg.Y, gesture.MaxAncestorDepth)

	switch msg.Action {
	case tea.MouseActionMotion:
		if !onCell {
			m.ctrl.Leave()
			return
		}
		m.ctrl.SetHoveredCell(row, col)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onCell {
			return
		}
		m.ctrl.SetHoveredCell(row, col)
		m.ctrl.SelectHovered()
	}
}

// handleTouch maps a left-button press, drag and release onto the touch
// gesture lifecycle.
func (m *Model) handleTouch(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if row, col, ok := m.hits.CellAt(msg.X, msg.Y, gesture.MaxAncestorDepth); ok {
			m.ctrl.TouchStart(row, col)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.ctrl.TouchMove(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		m.ctrl.TouchEnd()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.ctrl.Move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.Move(0, 1)
	case key.Matches(msg, m.keys.Select):
		m.ctrl.SelectHovered()
	case key.Matches(msg, m.keys.Theme):
		m.ctrl.ToggleTheme()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	default:
		return m, nil
	}

	m.relayout()
	return m.afterInput()
}

// afterInput quits once a selection exists unless the picker stays open.
func (m Model) afterInput() (tea.Model, tea.Cmd) {
	if _, ok := m.Selection(); ok && !m.keepOpen && !m.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
