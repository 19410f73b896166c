package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateActiveCells(t *testing.T) {
	t.Parallel()

	for rows := 0; rows <= 6; rows++ {
		for cols := 0; cols <= 6; cols++ {
			cells := EnumerateActiveCells(rows, cols)
			require.NotNil(t, cells)
			require.Len(t, cells, rows*cols)

			both := rows >= 1 && cols >= 1
			assert.Equal(t, both, contains(cells, Cell{Row: 1, Col: 1}), "rows=%d cols=%d", rows, cols)
			assert.Equal(t, both, contains(cells, Cell{rows, cols}), "rows=%d cols=%d", rows, cols)
		}
	}
}

func TestEnumerateActiveCellsRowMajor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}, EnumerateActiveCells(2, 3))
	assert.Empty(t, EnumerateActiveCells(-1, 4))
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	hovered := &Cell{Row: 3, Col: 2}
	for r := 1; r <= 5; r++ {
		for c := 1; c <= 5; c++ {
			want := r <= hovered.Row && c <= hovered.Col
			assert.Equal(t, want, IsActive(Cell{r, c}, hovered), "cell %d,%d", r, c)
			assert.False(t, IsActive(Cell{r, c}, nil))
		}
	}
}

func TestNewSelection(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sel := NewSelection(Cell{Row: 2, Col: 4}, at)

	assert.Equal(t, 2, sel.Rows)
	assert.Equal(t, 4, sel.Cols)
	assert.Len(t, sel.Cells, 8)
	assert.Equal(t, Cell{Row: 2, Col: 4}, sel.Cells[len(sel.Cells)-1])
	assert.Equal(t, at, sel.Timestamp)
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3 × 5", FormatSelectionText(3, 5))
	assert.Equal(t, "1 row by 1 column", CellAriaLabel(1, 1))
	assert.Equal(t, "1 row by 2 columns", CellAriaLabel(1, 2))
	assert.Equal(t, "4 rows by 1 column", CellAriaLabel(4, 1))
}

func TestCellValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Cell{Row: 1, Col: 1}.Valid())
	assert.False(t, Cell{Row: 0, Col: 1}.Valid())
	assert.False(t, Cell{Row: 2, Col: -1}.Valid())
}

func contains(cells []Cell, want Cell) bool {
	for _, c := range cells {
		if c == want {
			return true
		}
	}
	return false
}
