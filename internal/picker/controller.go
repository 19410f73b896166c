// Package picker owns the state of one table-size picking session and
// applies the pure layout, theme and gesture transitions to it.
package picker

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/tablepick/internal/gesture"
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/logger"
	"github.com/alexisbeaulieu97/tablepick/internal/ports"
	"github.com/alexisbeaulieu97/tablepick/internal/responsive"
	"github.com/alexisbeaulieu97/tablepick/internal/theme"
)

// Options configures a Controller.
type Options struct {
	Config          layout.LayoutConfig
	ShrinkThreshold int
	Touch           bool
	Locator         ports.PointerLocator
	Haptics         ports.Haptics
	Clock           ports.Clock
	Logger          ports.Logger
	Listener        Listener
}

// Controller is the single owner of hover, dimension and theme state.
type Controller struct {
	cfg       layout.LayoutConfig
	threshold int

	dims    layout.GridDimensions
	hovered *layout.Cell

	theme      *theme.Resolver
	responsive *responsive.Tracker
	gestures   *gesture.Classifier
	clock      ports.Clock
	log        ports.Logger
	listener   Listener
}

// New creates a controller from already validated options.
func New(opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	threshold := opts.ShrinkThreshold
	if threshold < 0 {
		threshold = 0
	}

	c := &Controller{
		cfg:        opts.Config,
		threshold:  threshold,
		dims:       opts.Config.Initial(),
		theme:      theme.NewResolver(),
		responsive: responsive.NewTracker(opts.Touch),
		clock:      clock,
		log:        log.With("component", "controller"),
		listener:   opts.Listener,
	}

	c.theme.SetMode(opts.Config.Theme)
	c.theme.OnChange(c.themeChanged)

	c.gestures = gesture.NewClassifier(opts.Locator,
		gesture.WithClock(clock),
		gesture.WithHaptics(opts.Haptics),
	)
	c.gestures.OnHover = c.Hover
	c.gestures.OnSelect = c.Select

	return c
}

// SetListener replaces the notification sink.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// Config returns the validated configuration.
func (c *Controller) Config() layout.LayoutConfig {
	return c.cfg
}

// Reconfigure applies a reloaded configuration mid-session. Footer,
// expansion, sizing, label, shrink threshold and theme mode take effect
// immediately. Grid extents keep their session values; the names of extent
// keys that differ are returned so the caller can report them.
func (c *Controller) Reconfigure(cfg layout.LayoutConfig, shrinkThreshold int) []string {
	var deferred []string
	for _, k := range []struct {
		name      string
		old, next int
	}{
		{"rows", c.cfg.Rows, cfg.Rows},
		{"cols", c.cfg.Cols, cfg.Cols},
		{"max_rows", c.cfg.MaxRows, cfg.MaxRows},
		{"max_cols", c.cfg.MaxCols, cfg.MaxCols},
	} {
		if k.old != k.next {
			deferred = append(deferred, k.name)
		}
	}

	cfg.Rows, cfg.Cols = c.cfg.Rows, c.cfg.Cols
	cfg.MaxRows, cfg.MaxCols = c.cfg.MaxRows, c.cfg.MaxCols
	c.cfg = cfg
	c.threshold = max(0, shrinkThreshold)

	if cfg.Theme != c.ThemeMode() {
		c.theme.SetMode(cfg.Theme)
	}
	return deferred
}

// Dimensions returns the current grid extent.
func (c *Controller) Dimensions() layout.GridDimensions {
	return c.dims
}

// HoveredCell returns the hovered cell, if any.
func (c *Controller) HoveredCell() (layout.Cell, bool) {
	if c.hovered == nil {
		return layout.Cell{}, false
	}
	return *c.hovered, true
}

// IsCellActive reports whether cell is inside the hovered rectangle.
func (c *Controller) IsCellActive(cell layout.Cell) bool {
	return layout.IsActive(cell, c.hovered)
}

// Hover records the hovered cell and, when the grid is expandable, applies
// the dimension engine.
func (c *Controller) Hover(cell layout.Cell) {
	if !cell.Valid() {
		return
	}
	next := cell
	c.hovered = &next
	c.notify(func(l Listener) { l.CellHovered(cell) })

	if !c.cfg.Expandable {
		return
	}

	prev := c.dims
	dims := layout.NextDimensions(prev, cell, c.cfg.Initial(), c.cfg.Limit(), c.threshold)
	change := layout.ClassifyChange(prev, dims)
	if !change.Resized() {
		return
	}

	c.dims = dims
	c.log.Debug(context.Background(), "grid resized",
		"from_rows", prev.Rows, "from_cols", prev.Cols,
		"rows", dims.Rows, "cols", dims.Cols,
		"expanded", change.Expanded, "shrank", change.Shrank)

	if change.Expanded {
		c.notify(func(l Listener) { l.GridExpanded(dims) })
	}
	if change.Shrank {
		c.notify(func(l Listener) { l.GridShrank(dims) })
	}
	c.notify(func(l Listener) { l.GridResized(dims) })
}

// SetHoveredCell hovers the cell at row, col.
func (c *Controller) SetHoveredCell(row, col int) {
	c.Hover(layout.Cell{Row: row, Col: col})
}

// Select confirms the rectangle ending at cell.
func (c *Controller) Select(cell layout.Cell) {
	if !cell.Valid() {
		return
	}
	sel := layout.NewSelection(cell, c.clock.Now())
	c.log.Info(context.Background(), "selection made", "rows", sel.Rows, "cols", sel.Cols)
	c.notify(func(l Listener) { l.SelectionMade(sel) })
}

// SelectHovered confirms the current hover, reporting false when nothing is
// hovered.
func (c *Controller) SelectHovered() bool {
	if c.hovered == nil {
		return false
	}
	c.Select(*c.hovered)
	return true
}

// Leave clears the hover when the pointer leaves the grid. Dimensions are
// kept.
func (c *Controller) Leave() {
	c.hovered = nil
}

// Reset restores the configured dimensions and clears hover and any touch
// session in progress.
func (c *Controller) Reset() {
	c.dims = c.cfg.Initial()
	c.hovered = nil
	c.gestures.Reset()
}

// Move shifts the hovered cell by the given delta, starting from (1,1)
// when nothing is hovered. The result stays inside the visible grid.
func (c *Controller) Move(dRow, dCol int) {
	cell := layout.Cell{Row: 1, Col: 1}
	if c.hovered != nil {
		cell = layout.Cell{Row: c.hovered.Row + dRow, Col: c.hovered.Col + dCol}
	}
	cell.Row = max(1, min(c.dims.Rows, cell.Row))
	cell.Col = max(1, min(c.dims.Cols, cell.Col))
	c.Hover(cell)
}

// TouchStart forwards a touch-start on a cell to the gesture classifier.
func (c *Controller) TouchStart(row, col int) {
	c.gestures.TouchStart(row, col)
}

// TouchMove forwards a touch-move at screen coordinates.
func (c *Controller) TouchMove(x, y int) {
	c.gestures.TouchMove(x, y)
}

// TouchEnd forwards a touch-end.
func (c *Controller) TouchEnd() {
	c.gestures.TouchEnd()
}

// Touching reports whether a touch session is open.
func (c *Controller) Touching() bool {
	return c.gestures.State() == gesture.Touching
}

// EffectiveTheme returns the resolved light/dark theme.
func (c *Controller) EffectiveTheme() theme.Theme {
	return c.theme.Resolved()
}

// ThemeMode returns the explicit theme preference.
func (c *Controller) ThemeMode() theme.Mode {
	return c.theme.Mode()
}

// SetTheme sets the explicit theme preference.
func (c *Controller) SetTheme(mode theme.Mode) {
	c.theme.SetMode(mode)
}

// ToggleTheme flips between light and dark.
func (c *Controller) ToggleTheme() {
	c.theme.Toggle()
}

// SetSystemPreference records the observed system theme.
func (c *Controller) SetSystemPreference(t theme.Theme) {
	c.theme.SetSystemPreference(t)
}

// Responsive exposes breakpoint state.
func (c *Controller) Responsive() *responsive.Tracker {
	return c.responsive
}

// SyncSignals pulls the current viewport and system theme from the host.
// Nil signals are skipped. It reports whether the breakpoint changed.
func (c *Controller) SyncSignals(viewport ports.ViewportSignal, system ports.SystemThemeSignal) bool {
	changed := false
	if viewport != nil {
		w, h := viewport.Viewport()
		changed = c.responsive.SetViewport(responsive.Viewport{Width: w, Height: h})
		if changed {
			c.log.Debug(context.Background(), "breakpoint changed", "breakpoint", c.responsive.Breakpoint().String(), "width", w)
		}
	}
	if system != nil {
		if system.PrefersDark() {
			c.theme.SetSystemPreference(theme.Dark)
		} else {
			c.theme.SetSystemPreference(theme.Light)
		}
	}
	return changed
}

// CellSize returns the pixel cell size for a container of the given width.
// Non-responsive pickers use the configured cell size.
func (c *Controller) CellSize(containerWidth int) int {
	if !c.cfg.Responsive {
		return c.cfg.CellSize
	}
	return c.responsive.CalculateCellSize(containerWidth, c.dims.Cols, c.cfg.MinCellSize, layout.MaxCellSize)
}

// SelectionText is the footer label for the hovered cell, or "" when none.
func (c *Controller) SelectionText() string {
	if c.hovered == nil {
		return ""
	}
	return layout.FormatSelectionText(c.hovered.Row, c.hovered.Col)
}

// ScreenReaderText announces the hovered rectangle.
func (c *Controller) ScreenReaderText() string {
	if c.hovered == nil {
		return ""
	}
	return fmt.Sprintf("Selected %d rows by %d columns", c.hovered.Row, c.hovered.Col)
}

func (c *Controller) themeChanged(t theme.Theme) {
	c.log.Debug(context.Background(), "theme changed", "theme", string(t))
	c.notify(func(l Listener) { l.ThemeChanged(t) })
}

func (c *Controller) notify(fn func(Listener)) {
	if c.listener != nil {
		fn(c.listener)
	}
}
