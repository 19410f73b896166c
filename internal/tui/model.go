package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tablepick/internal/config"
	"github.com/alexisbeaulieu97/tablepick/internal/gate"
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/logger"
	"github.com/alexisbeaulieu97/tablepick/internal/picker"
	"github.com/alexisbeaulieu97/tablepick/internal/ports"
	"github.com/alexisbeaulieu97/tablepick/internal/theme"
)

// Grid geometry inside the rendered frame.
const (
	gridOriginX = 2 // left border + padding
	gridOriginY = 2 // top border + title line
	cellGap     = 1
	minCellCols = 3
)

// ConfigReloadedMsg delivers a configuration re-read from disk.
type ConfigReloadedMsg struct {
	File *config.File
}

// SystemThemeMsg reports the terminal background preference.
type SystemThemeMsg struct {
	Dark bool
}

type viewportSettledMsg struct {
	token uint64
}

// Options configures the picker model.
type Options struct {
	Layout          layout.LayoutConfig
	Runtime         config.Runtime
	KeepOpen        bool
	Haptics         ports.Haptics
	Clock           ports.Clock
	Logger          ports.Logger
	DetectSystem    func() bool
	ResizeDebouncer *gate.Debouncer
}

// session collects controller notifications. It is shared by every copy of
// the Model so callbacks fired during Update are visible afterwards.
type session struct {
	selection *layout.Selection
	status    string
}

// Model is the Bubble Tea model hosting the picker controller.
type Model struct {
	ctrl     *picker.Controller
	hits     *HitMap
	resize   *gate.Debouncer
	state    *session
	keys     keyMap
	help     help.Model
	log      ports.Logger
	runtime  config.Runtime
	detect   func() bool
	keepOpen bool

	width     int
	height    int
	sized     bool
	cancelled bool
	quitting  bool
}

// NewModel builds a picker model.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	if opts.Runtime.PixelsPerColumn <= 0 {
		opts.Runtime.PixelsPerColumn = config.DefaultPixelsPerColumn
	}
	resize := opts.ResizeDebouncer
	if resize == nil {
		resize = gate.NewDebouncer(gate.DefaultDebounceDuration)
	}

	hits := NewHitMap()
	state := &session{}
	ctrl := picker.New(picker.Options{
		Config:          opts.Layout,
		ShrinkThreshold: opts.Runtime.ShrinkThreshold,
		Touch:           opts.Runtime.Touch,
		Locator:         hits,
		Haptics:         opts.Haptics,
		Clock:           opts.Clock,
		Logger:          log,
	})
	events := picker.NewPublisher(log)
	events.Subscribe(state.listener())
	ctrl.SetListener(events)

	m := Model{
		ctrl:     ctrl,
		hits:     hits,
		resize:   resize,
		state:    state,
		keys:     newKeyMap(),
		help:     help.New(),
		log:      log.With("component", "tui"),
		runtime:  opts.Runtime,
		detect:   opts.DetectSystem,
		keepOpen: opts.KeepOpen,
	}
	m.relayout()
	return m
}

// Init queries the terminal background for the system theme signal.
func (m Model) Init() tea.Cmd {
	if m.detect == nil {
		return nil
	}
	detect := m.detect
	return func() tea.Msg {
		return SystemThemeMsg{Dark: detect()}
	}
}

// Controller exposes the underlying picker controller.
func (m Model) Controller() *picker.Controller {
	return m.ctrl
}

// Selection returns the confirmed selection, if any.
func (m Model) Selection() (layout.Selection, bool) {
	if m.state.selection == nil {
		return layout.Selection{}, false
	}
	return *m.state.selection, true
}

// Cancelled reports whether the user quit without selecting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Status returns the last notification line.
func (m Model) Status() string {
	return m.state.status
}

func (s *session) listener() picker.Listener {
	return picker.ListenerFuncs{
		OnSelection: func(sel layout.Selection) {
			s.selection = &sel
			s.status = fmt.Sprintf("inserted %s table", layout.FormatSelectionText(sel.Rows, sel.Cols))
		},
		OnExpanded: func(d layout.GridDimensions) {
			s.status = fmt.Sprintf("grid expanded to %s", layout.FormatSelectionText(d.Rows, d.Cols))
		},
		OnShrank: func(d layout.GridDimensions) {
			s.status = fmt.Sprintf("grid shrank to %s", layout.FormatSelectionText(d.Rows, d.Cols))
		},
		OnTheme: func(t theme.Theme) {
			s.status = fmt.Sprintf("%s theme", t)
		},
	}
}

// cellColumns is the rendered width of one cell in terminal columns.
func (m Model) cellColumns() int {
	ppc := m.runtime.PixelsPerColumn
	dims := m.ctrl.Dimensions()

	containerCols := m.width - 2*gridOriginX
	if !m.sized || containerCols <= 0 {
		containerCols = 80 - 2*gridOriginX
	}

	cols := m.ctrl.CellSize(containerCols*ppc) / ppc
	fit := (containerCols - cellGap*(dims.Cols-1)) / dims.Cols
	return max(minCellCols, min(cols, fit))
}

// relayout rebuilds the hit map for the current grid geometry. Each cell
// has an inner fill region whose parent is the cell, and every cell hangs
// off the grid region.
func (m Model) relayout() {
	m.hits.Clear()
	dims := m.ctrl.Dimensions()
	cw := m.cellColumns()

	grid := m.hits.Add("grid", Rect{
		X: gridOriginX,
		Y: gridOriginY,
		W: dims.Cols*cw + (dims.Cols-1)*cellGap,
		H: dims.Rows,
	}, nil)

	for r := 1; r <= dims.Rows; r++ {
		for c := 1; c <= dims.Cols; c++ {
			x := gridOriginX + (c-1)*(cw+cellGap)
			y := gridOriginY + r - 1
			id := fmt.Sprintf("cell-%d-%d", r, c)
			cell := m.hits.AddCell(id, Rect{X: x, Y: y, W: cw, H: 1}, r, c, grid)
			m.hits.Add(id+"-fill", Rect{X: x + 1, Y: y, W: cw - 2, H: 1}, cell)
		}
	}
}

func (m Model) logf(msg string, fields ...interface{}) {
	m.log.Debug(context.Background(), msg, fields...)
}
