package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/tablepick/internal/layout"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width int
		want  Breakpoint
	}{
		{0, Mobile},
		{320, Mobile},
		{576, Mobile},
		{577, Tablet},
		{1024, Tablet},
		{1025, Desktop},
		{2560, Desktop},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.width), "width %d", tt.width)
	}
}

func TestDefaultsShrinkGridAsViewportNarrows(t *testing.T) {
	t.Parallel()

	mobile := DefaultsFor(Mobile)
	tablet := DefaultsFor(Tablet)
	desktop := DefaultsFor(Desktop)

	assert.Equal(t, layout.GridDimensions{Rows: 6, Cols: 6}, mobile.GridSize)
	assert.Equal(t, layout.GridDimensions{Rows: 10, Cols: 10}, desktop.GridSize)
	assert.Less(t, mobile.GridSize.Rows, tablet.GridSize.Rows)
	assert.Less(t, tablet.GridSize.Rows, desktop.GridSize.Rows)
	assert.Greater(t, mobile.CellSize, tablet.CellSize)
	assert.Greater(t, tablet.CellSize, desktop.CellSize)
	assert.Greater(t, mobile.GapSize, desktop.GapSize)

	assert.Equal(t, desktop, DefaultsFor(Breakpoint(9)))
}

func TestBreakpointNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Breakpoint{Mobile, Tablet, Desktop}, Breakpoints())
	assert.Equal(t, "tablet", Tablet.String())
	assert.Equal(t, "Desktop", Desktop.Label())
	assert.Equal(t, "unknown", Breakpoint(-1).String())
}

func TestMinTouchTarget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 44, MinTouchTarget(true))
	assert.Equal(t, 20, MinTouchTarget(false))
}
