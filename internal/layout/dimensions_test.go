package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDimensions(t *testing.T) {
	t.Parallel()

	minDims := GridDimensions{Rows: 10, Cols: 10}
	maxDims := GridDimensions{Rows: 20, Cols: 20}

	tests := []struct {
		name    string
		current GridDimensions
		hover   Cell
		want    GridDimensions
	}{
		{name: "expands at edge", current: GridDimensions{Rows: 10, Cols: 10}, hover: Cell{Row: 10, Col: 10}, want: GridDimensions{Rows: 11, Cols: 11}},
		{name: "caps at max", current: GridDimensions{Rows: 19, Cols: 19}, hover: Cell{Row: 20, Col: 20}, want: GridDimensions{Rows: 20, Cols: 20}},
		{name: "shrinks to min", current: GridDimensions{Rows: 15, Cols: 15}, hover: Cell{Row: 8, Col: 8}, want: GridDimensions{Rows: 10, Cols: 10}},
		{name: "never below min", current: GridDimensions{Rows: 10, Cols: 10}, hover: Cell{Row: 3, Col: 3}, want: GridDimensions{Rows: 10, Cols: 10}},
		{name: "within hysteresis", current: GridDimensions{Rows: 15, Cols: 15}, hover: Cell{Row: 13, Col: 13}, want: GridDimensions{Rows: 15, Cols: 15}},
		{name: "past hysteresis", current: GridDimensions{Rows: 15, Cols: 15}, hover: Cell{Row: 12, Col: 12}, want: GridDimensions{Rows: 13, Cols: 13}},
		{name: "interior hover unchanged", current: GridDimensions{Rows: 12, Cols: 12}, hover: Cell{Row: 11, Col: 11}, want: GridDimensions{Rows: 12, Cols: 12}},
		{name: "axes independent", current: GridDimensions{Rows: 15, Cols: 12}, hover: Cell{Row: 4, Col: 12}, want: GridDimensions{Rows: 10, Cols: 13}},
		{name: "hover beyond current jumps", current: GridDimensions{Rows: 10, Cols: 10}, hover: Cell{Row: 14, Col: 10}, want: GridDimensions{Rows: 15, Cols: 11}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NextDimensions(tt.current, tt.hover, minDims, maxDims, DefaultShrinkThreshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextDimensionsStaysWithinBounds(t *testing.T) {
	t.Parallel()

	minDims := GridDimensions{Rows: 3, Cols: 5}
	maxDims := GridDimensions{Rows: 8, Cols: 9}

	for rows := 0; rows <= 12; rows++ {
		for hover := 0; hover <= 12; hover++ {
			for threshold := -1; threshold <= 3; threshold++ {
				got := NextDimensions(GridDimensions{rows, rows}, Cell{hover, hover}, minDims, maxDims, threshold)
				require.GreaterOrEqual(t, got.Rows, minDims.Rows)
				require.LessOrEqual(t, got.Rows, maxDims.Rows)
				require.GreaterOrEqual(t, got.Cols, minDims.Cols)
				require.LessOrEqual(t, got.Cols, maxDims.Cols)
			}
		}
	}
}

func TestNextDimensionsZeroThresholdShrinksImmediately(t *testing.T) {
	t.Parallel()

	got := NextDimensions(GridDimensions{Rows: 15, Cols: 15}, Cell{Row: 13, Col: 14}, GridDimensions{Rows: 10, Cols: 10}, GridDimensions{Rows: 20, Cols: 20}, 0)
	assert.Equal(t, GridDimensions{Rows: 14, Cols: 15}, got)

	negative := NextDimensions(GridDimensions{Rows: 15, Cols: 15}, Cell{Row: 13, Col: 14}, GridDimensions{Rows: 10, Cols: 10}, GridDimensions{Rows: 20, Cols: 20}, -4)
	assert.Equal(t, got, negative)
}

func TestNextDimensionsMaxBelowMin(t *testing.T) {
	t.Parallel()

	got := NextDimensions(GridDimensions{Rows: 6, Cols: 6}, Cell{Row: 6, Col: 1}, GridDimensions{Rows: 6, Cols: 6}, GridDimensions{Rows: 4, Cols: 4}, 2)
	assert.Equal(t, GridDimensions{Rows: 6, Cols: 6}, got)
}

func TestClassifyChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prev     GridDimensions
		next     GridDimensions
		expanded bool
		shrank   bool
	}{
		{name: "unchanged", prev: GridDimensions{Rows: 10, Cols: 10}, next: GridDimensions{Rows: 10, Cols: 10}},
		{name: "grew", prev: GridDimensions{Rows: 10, Cols: 10}, next: GridDimensions{Rows: 11, Cols: 10}, expanded: true},
		{name: "shrank", prev: GridDimensions{Rows: 12, Cols: 12}, next: GridDimensions{Rows: 12, Cols: 10}, shrank: true},
		{name: "mixed", prev: GridDimensions{Rows: 12, Cols: 10}, next: GridDimensions{Rows: 10, Cols: 11}, expanded: true, shrank: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			change := ClassifyChange(tt.prev, tt.next)
			assert.Equal(t, tt.expanded, change.Expanded)
			assert.Equal(t, tt.shrank, change.Shrank)
			assert.Equal(t, tt.expanded || tt.shrank, change.Resized())
		})
	}
}
