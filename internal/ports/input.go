package ports

import "time"

// Element is a hit-testable region. Visual sub-elements of a cell report no
// coordinates but point at the cell through Parent.
type Element interface {
	// CellCoordinates returns the 1-indexed cell this element represents.
	CellCoordinates() (row, col int, ok bool)
	// Parent returns the enclosing element, or nil at the root.
	Parent() Element
}

// PointerLocator hit-tests a screen coordinate.
type PointerLocator interface {
	// ElementAt returns the innermost element at (x, y), or nil.
	ElementAt(x, y int) Element
}

// HapticStyle is the strength of a haptic cue.
type HapticStyle int

const (
	HapticLight HapticStyle = iota
	HapticMedium
	HapticHeavy
)

// String returns the style name.
func (s HapticStyle) String() string {
	switch s {
	case HapticLight:
		return "light"
	case HapticMedium:
		return "medium"
	case HapticHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Duration is the vibration length associated with the style.
func (s HapticStyle) Duration() time.Duration {
	switch s {
	case HapticLight:
		return 10 * time.Millisecond
	case HapticMedium:
		return 20 * time.Millisecond
	default:
		return 30 * time.Millisecond
	}
}

// Haptics emits best-effort haptic feedback. Implementations may return an
// error when the platform has no haptic capability; callers ignore it.
type Haptics interface {
	Pulse(style HapticStyle) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
