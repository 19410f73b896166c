// Package gesture classifies touch sequences over the grid into hover and
// tap (selection) gestures.
package gesture

import (
	"time"

	"github.com/alexisbeaulieu97/tablepick/internal/gate"
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

// Timing constants for touch classification.
const (
	MoveThrottle = 50 * time.Millisecond
	TapThreshold = 300 * time.Millisecond

	// MaxAncestorDepth bounds the walk from a hit element up to its cell.
	MaxAncestorDepth = 5
)

// State is the classifier's lifecycle state.
type State int

const (
	Idle State = iota
	Touching
)

func (s State) String() string {
	if s == Touching {
		return "touching"
	}
	return "idle"
}

// session is scoped to one touch-start/touch-end lifecycle.
type session struct {
	start    time.Time
	lastCell layout.Cell
	hasCell  bool
}

// Classifier turns touch events into hover and select callbacks. It is
// driven synchronously by a single event loop.
type Classifier struct {
	locator  ports.PointerLocator
	haptics  ports.Haptics
	clock    ports.Clock
	throttle *gate.Throttle

	session *session

	// OnHover fires when the finger lands on or moves to a new cell.
	OnHover func(layout.Cell)
	// OnSelect fires when a touch ends quickly enough to count as a tap.
	OnSelect func(layout.Cell)
}

// Option customises a Classifier.
type Option func(*Classifier)

// WithHaptics sets the haptic feedback sink.
func WithHaptics(h ports.Haptics) Option {
	return func(c *Classifier) { c.haptics = h }
}

// WithClock overrides the time source.
func WithClock(clock ports.Clock) Option {
	return func(c *Classifier) { c.clock = clock }
}

// NewClassifier creates an idle classifier that hit-tests with locator.
func NewClassifier(locator ports.PointerLocator, opts ...Option) *Classifier {
	c := &Classifier{
		locator:  locator,
		clock:    ports.SystemClock{},
		throttle: gate.NewThrottle(MoveThrottle),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports whether a touch session is in progress.
func (c *Classifier) State() State {
	if c.session != nil {
		return Touching
	}
	return Idle
}

// LastCell returns the most recent cell of the active session.
func (c *Classifier) LastCell() (layout.Cell, bool) {
	if c.session == nil || !c.session.hasCell {
		return layout.Cell{}, false
	}
	return c.session.lastCell, true
}

// TouchStart opens a session on the touched cell. A session that is still
// open is discarded without producing a selection.
func (c *Classifier) TouchStart(row, col int) {
	cell := layout.Cell{Row: row, Col: col}
	c.session = &session{
		start:    c.clock.Now(),
		lastCell: cell,
		hasCell:  true,
	}
	c.throttle.Reset()

	c.pulse(ports.HapticLight)
	c.hover(cell)
}

// TouchMove resolves the cell under the pointer and reports it when it
// differs from the last one. Moves inside the throttle window are dropped.
func (c *Classifier) TouchMove(x, y int) {
	if c.session == nil {
		return
	}
	if !c.throttle.Allow(c.clock.Now()) {
		return
	}

	cell, ok := c.resolve(x, y)
	if !ok {
		return
	}
	if c.session.hasCell && c.session.lastCell == cell {
		return
	}

	c.session.lastCell = cell
	c.session.hasCell = true
	c.pulse(ports.HapticLight)
	c.hover(cell)
}

// TouchEnd closes the session and reports a selection when it was a tap.
func (c *Classifier) TouchEnd() {
	s := c.session
	c.session = nil
	if s == nil || !s.hasCell {
		return
	}

	if c.clock.Now().Sub(s.start) < TapThreshold {
		c.pulse(ports.HapticMedium)
		if c.OnSelect != nil {
			c.OnSelect(s.lastCell)
		}
	}
}

// Reset abandons any session in progress.
func (c *Classifier) Reset() {
	c.session = nil
	c.throttle.Reset()
}

func (c *Classifier) resolve(x, y int) (layout.Cell, bool) {
	if c.locator == nil {
		return layout.Cell{}, false
	}
	el := c.locator.ElementAt(x, y)
	for depth := 0; el != nil && depth < MaxAncestorDepth; depth++ {
		if row, col, ok := el.CellCoordinates(); ok {
			cell := layout.Cell{Row: row, Col: col}
			if cell.Valid() {
				return cell, true
			}
			return layout.Cell{}, false
		}
		el = el.Parent()
	}
	return layout.Cell{}, false
}

func (c *Classifier) hover(cell layout.Cell) {
	if c.OnHover != nil {
		c.OnHover(cell)
	}
}

func (c *Classifier) pulse(style ports.HapticStyle) {
	if c.haptics == nil {
		return
	}
	_ = c.haptics.Pulse(style)
}
