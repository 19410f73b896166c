package layout

import "time"

// Cell is a 1-indexed grid coordinate.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Valid reports whether the cell lies inside the positive quadrant.
func (c Cell) Valid() bool {
	return c.Row >= 1 && c.Col >= 1
}

// GridDimensions is the visible extent of the grid.
type GridDimensions struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// Selection is a confirmed table size. Cells holds the rectangle
// [1..Rows] x [1..Cols] in row-major order.
type Selection struct {
	Rows      int       `json:"rows" yaml:"rows"`
	Cols      int       `json:"cols" yaml:"cols"`
	Cells     []Cell    `json:"cells" yaml:"cells"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewSelection builds the selection anchored at the given bottom-right cell.
func NewSelection(cell Cell, at time.Time) Selection {
	return Selection{
		Rows:      cell.Row,
		Cols:      cell.Col,
		Cells:     EnumerateActiveCells(cell.Row, cell.Col),
		Timestamp: at,
	}
}
