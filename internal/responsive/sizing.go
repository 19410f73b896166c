package responsive

// CalculateCellSize divides the container width among columns after removing
// gaps on both sides of every column, then clamps into [minSize, maxSize].
// Narrow containers clamp to minSize rather than going negative.
func CalculateCellSize(containerWidth, columns, minSize, maxSize, gap int) int {
	if maxSize < minSize {
		maxSize = minSize
	}
	if columns < 1 {
		return minSize
	}
	if gap < 0 {
		gap = 0
	}

	available := containerWidth - gap*(columns+1)
	size := floorDiv(available, columns)
	return max(minSize, min(maxSize, size))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
