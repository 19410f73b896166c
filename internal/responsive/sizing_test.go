package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCellSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		width, columns int
		minSize        int
		maxSize        int
		gap            int
		want           int
	}{
		{name: "narrow clamps to min", width: 100, columns: 10, minSize: 20, maxSize: 40, gap: 2, want: 20},
		{name: "wide clamps to max", width: 2000, columns: 5, minSize: 20, maxSize: 40, gap: 2, want: 40},
		{name: "fits between bounds", width: 300, columns: 10, minSize: 20, maxSize: 40, gap: 2, want: 27},
		{name: "negative width", width: -50, columns: 4, minSize: 20, maxSize: 40, gap: 2, want: 20},
		{name: "zero columns", width: 500, columns: 0, minSize: 22, maxSize: 40, gap: 2, want: 22},
		{name: "max below min", width: 2000, columns: 5, minSize: 44, maxSize: 40, gap: 2, want: 44},
		{name: "negative gap ignored", width: 250, columns: 10, minSize: 20, maxSize: 40, gap: -3, want: 25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateCellSize(tt.width, tt.columns, tt.minSize, tt.maxSize, tt.gap)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateCellSizeAlwaysInRange(t *testing.T) {
	t.Parallel()

	for width := 0; width <= 2000; width += 37 {
		for columns := 1; columns <= 20; columns++ {
			got := CalculateCellSize(width, columns, 20, 40, 2)
			assert.GreaterOrEqual(t, got, 20)
			assert.LessOrEqual(t, got, 40)
		}
	}
	got := CalculateCellSize(600, 10, 20, 40, 2)
	assert.True(t, got >= 20 && got <= 40)
}
