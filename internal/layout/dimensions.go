package layout

// DefaultShrinkThreshold is the number of cells the pointer must retreat past
// before the grid shrinks.
const DefaultShrinkThreshold = 2

// Change classifies the difference between two grid extents.
type Change struct {
	Expanded bool
	Shrank   bool
}

// Resized reports whether either axis changed.
func (c Change) Resized() bool {
	return c.Expanded || c.Shrank
}

// NextDimensions computes the grid extent that should follow a hover at the
// given cell. Rows and columns are evaluated independently. On each axis
// expansion wins over shrinking, and the result always lies in [min, max].
func NextDimensions(current GridDimensions, hover Cell, minDims, maxDims GridDimensions, shrinkThreshold int) GridDimensions {
	if shrinkThreshold < 0 {
		shrinkThreshold = 0
	}
	return GridDimensions{
		Rows: nextAxis(current.Rows, hover.Row, minDims.Rows, maxDims.Rows, shrinkThreshold),
		Cols: nextAxis(current.Cols, hover.Col, minDims.Cols, maxDims.Cols, shrinkThreshold),
	}
}

func nextAxis(current, hover, lo, hi, threshold int) int {
	if hi < lo {
		hi = lo
	}

	next := current
	switch {
	case hover >= current && current < hi:
		next = min(hover+1, hi)
	case current > lo && hover+threshold < current:
		next = max(lo, hover+1)
	}

	return clamp(next, lo, hi)
}

// ClassifyChange reports which axes grew or shrank between prev and next.
// Both flags may be set when one axis grows while the other shrinks.
func ClassifyChange(prev, next GridDimensions) Change {
	return Change{
		Expanded: next.Rows > prev.Rows || next.Cols > prev.Cols,
		Shrank:   next.Rows < prev.Rows || next.Cols < prev.Cols,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
