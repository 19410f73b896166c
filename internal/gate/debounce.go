package gate

import (
	"sync"
	"time"
)

// DefaultDebounceDuration matches the recommended resize debounce window.
const DefaultDebounceDuration = 150 * time.Millisecond

// Debouncer coalesces rapid events so only the last one in a burst takes
// effect once the window has elapsed without another event.
//
// Two styles are supported. Trigger schedules a callback on a timer. Mark and
// Settled support event loops that schedule their own ticks: Mark returns a
// token for the newest event, and Settled reports whether that token is still
// the newest when the tick arrives.
type Debouncer struct {
	duration time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a Debouncer. A zero duration uses
// DefaultDebounceDuration.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback after the window, cancelling any callback that
// is still pending.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A newer Trigger or Cancel may have raced with this timer firing.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		callback()
	})
}

// Mark records a new event and returns its token.
func (d *Debouncer) Mark() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return d.seq
}

// Settled reports whether token still identifies the newest event.
func (d *Debouncer) Settled(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return token == d.seq
}

// Cancel drops any pending callback and invalidates outstanding tokens.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
