package responsive

import "github.com/alexisbeaulieu97/tablepick/internal/layout"

// Viewport is a width/height pair in pixels.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport is used before the host reports a size.
var DefaultViewport = Viewport{Width: 1024, Height: 768}

// Tracker holds the last reported viewport and device capabilities and
// answers breakpoint-derived questions about them.
type Tracker struct {
	viewport Viewport
	touch    bool
}

// NewTracker starts from DefaultViewport.
func NewTracker(touch bool) *Tracker {
	return &Tracker{viewport: DefaultViewport, touch: touch}
}

// SetViewport records a new viewport size and reports whether the breakpoint
// changed as a result.
func (t *Tracker) SetViewport(v Viewport) bool {
	before := t.Breakpoint()
	t.viewport = v
	return before != t.Breakpoint()
}

// Viewport returns the last recorded size.
func (t *Tracker) Viewport() Viewport {
	return t.viewport
}

// Breakpoint classifies the current viewport width.
func (t *Tracker) Breakpoint() Breakpoint {
	return Classify(t.viewport.Width)
}

// IsMobile reports a viewport below the tablet breakpoint.
func (t *Tracker) IsMobile() bool { return t.Breakpoint() == Mobile }

// IsLandscape reports whether the viewport is wider than it is tall.
func (t *Tracker) IsLandscape() bool {
	return t.viewport.Width > t.viewport.Height
}

// IsNarrowViewport reports a mobile viewport in portrait orientation.
func (t *Tracker) IsNarrowViewport() bool {
	return t.IsMobile() && !t.IsLandscape()
}

// RecommendedGridSize is the starting grid for the current breakpoint.
func (t *Tracker) RecommendedGridSize() layout.GridDimensions {
	return DefaultsFor(t.Breakpoint()).GridSize
}

// RecommendedCellSize is the cell edge in pixels for the current breakpoint.
func (t *Tracker) RecommendedCellSize() int {
	return DefaultsFor(t.Breakpoint()).CellSize
}

// RecommendedGapSize is the spacing between cells in pixels for the current
// breakpoint.
func (t *Tracker) RecommendedGapSize() int {
	return DefaultsFor(t.Breakpoint()).GapSize
}

// MinTouchTargetSize is the smallest cell the current device should get.
func (t *Tracker) MinTouchTargetSize() int {
	return MinTouchTarget(t.touch)
}

// CalculateCellSize sizes cells for the current breakpoint's gap. On touch
// devices the touch target minimum replaces minSize.
func (t *Tracker) CalculateCellSize(containerWidth, columns, minSize, maxSize int) int {
	if t.touch {
		minSize = TouchTargetSize
	}
	return CalculateCellSize(containerWidth, columns, minSize, maxSize, t.RecommendedGapSize())
}
