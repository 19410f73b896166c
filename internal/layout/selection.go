package layout

import "fmt"

// IsActive reports whether cell falls inside the rectangle spanned from (1,1)
// to hovered. A nil hovered cell activates nothing.
func IsActive(cell Cell, hovered *Cell) bool {
	if hovered == nil {
		return false
	}
	return cell.Row <= hovered.Row && cell.Col <= hovered.Col
}

// EnumerateActiveCells lists every cell of the rows x cols rectangle in
// row-major order. Non-positive sizes yield an empty slice.
func EnumerateActiveCells(rows, cols int) []Cell {
	if rows <= 0 || cols <= 0 {
		return []Cell{}
	}
	cells := make([]Cell, 0, rows*cols)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// FormatSelectionText renders a size as "R × C".
func FormatSelectionText(rows, cols int) string {
	return fmt.Sprintf("%d × %d", rows, cols)
}

// CellAriaLabel describes a cell for assistive technology,
// e.g. "1 row by 3 columns".
func CellAriaLabel(row, col int) string {
	return fmt.Sprintf("%d %s by %d %s", row, plural(row, "row"), col, plural(col, "column"))
}

func plural(n int, word string) string {
	if n > 1 {
		return word + "s"
	}
	return word
}
