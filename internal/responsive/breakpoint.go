// Package responsive classifies viewport widths into breakpoints and derives
// cell sizing from them.
package responsive

import "github.com/alexisbeaulieu97/tablepick/internal/layout"

// Breakpoint is a named viewport-width bucket.
type Breakpoint int

const (
	Mobile Breakpoint = iota
	Tablet
	Desktop
)

// Width thresholds, inclusive upper bounds.
const (
	MobileMaxWidth = 576
	TabletMaxWidth = 1024
)

// Touch target minimums in pixels.
const (
	TouchTargetSize   = 44
	PointerTargetSize = 20
)

// String returns the lower-case breakpoint name.
func (b Breakpoint) String() string {
	switch b {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Label returns the display name of the breakpoint.
func (b Breakpoint) Label() string {
	switch b {
	case Mobile:
		return "Mobile"
	case Tablet:
		return "Tablet"
	case Desktop:
		return "Desktop"
	default:
		return "Unknown"
	}
}

// Defaults are the sizing recommendations for one breakpoint. Smaller
// viewports get smaller grids with larger cells and gaps.
type Defaults struct {
	GridSize layout.GridDimensions
	CellSize int
	GapSize  int
}

var breakpointDefaults = map[Breakpoint]Defaults{
	Mobile:  {GridSize: layout.GridDimensions{Rows: 6, Cols: 6}, CellSize: 32, GapSize: 4},
	Tablet:  {GridSize: layout.GridDimensions{Rows: 8, Cols: 8}, CellSize: 28, GapSize: 3},
	Desktop: {GridSize: layout.GridDimensions{Rows: 10, Cols: 10}, CellSize: 24, GapSize: 2},
}

// Breakpoints lists every breakpoint from narrowest to widest.
func Breakpoints() []Breakpoint {
	return []Breakpoint{Mobile, Tablet, Desktop}
}

// Classify maps a viewport width in pixels to its breakpoint.
func Classify(width int) Breakpoint {
	switch {
	case width <= MobileMaxWidth:
		return Mobile
	case width <= TabletMaxWidth:
		return Tablet
	default:
		return Desktop
	}
}

// DefaultsFor returns the recommendations for b, falling back to desktop.
func DefaultsFor(b Breakpoint) Defaults {
	if d, ok := breakpointDefaults[b]; ok {
		return d
	}
	return breakpointDefaults[Desktop]
}

// MinTouchTarget returns the minimum interactive size for the device class.
func MinTouchTarget(touch bool) int {
	if touch {
		return TouchTargetSize
	}
	return PointerTargetSize
}
