package picker

import (
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/theme"
)

// Listener receives controller notifications.
type Listener interface {
	CellHovered(cell layout.Cell)
	SelectionMade(sel layout.Selection)
	GridExpanded(dims layout.GridDimensions)
	GridShrank(dims layout.GridDimensions)
	GridResized(dims layout.GridDimensions)
	ThemeChanged(t theme.Theme)
}

// ListenerFuncs adapts optional functions to Listener. Nil fields are
// skipped.
type ListenerFuncs struct {
	OnHover     func(layout.Cell)
	OnSelection func(layout.Selection)
	OnExpanded  func(layout.GridDimensions)
	OnShrank    func(layout.GridDimensions)
	OnResized   func(layout.GridDimensions)
	OnTheme     func(theme.Theme)
}

// CellHovered calls OnHover.
func (f ListenerFuncs) CellHovered(cell layout.Cell) {
	if f.OnHover != nil {
		f.OnHover(cell)
	}
}

// SelectionMade calls OnSelection.
func (f ListenerFuncs) SelectionMade(sel layout.Selection) {
	if f.OnSelection != nil {
		f.OnSelection(sel)
	}
}

// GridExpanded calls OnExpanded.
func (f ListenerFuncs) GridExpanded(dims layout.GridDimensions) {
	if f.OnExpanded != nil {
		f.OnExpanded(dims)
	}
}

// GridShrank calls OnShrank.
func (f ListenerFuncs) GridShrank(dims layout.GridDimensions) {
	if f.OnShrank != nil {
		f.OnShrank(dims)
	}
}

// GridResized calls OnResized.
func (f ListenerFuncs) GridResized(dims layout.GridDimensions) {
	if f.OnResized != nil {
		f.OnResized(dims)
	}
}

// ThemeChanged calls OnTheme.
func (f ListenerFuncs) ThemeChanged(t theme.Theme) {
	if f.OnTheme != nil {
		f.OnTheme(t)
	}
}

var _ Listener = ListenerFuncs{}
