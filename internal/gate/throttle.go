// Package gate provides time-based admission gates: a timestamp throttle that
// drops early events and a timer-reset debouncer that coalesces bursts.
package gate

import (
	"sync"
	"time"
)

// Throttle admits at most one event per interval. Events arriving too early
// are dropped, never deferred.
type Throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewThrottle creates a throttle with the given minimum spacing.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Allow reports whether an event at now passes the gate and, if so, records
// it as the most recent admitted event.
func (t *Throttle) Allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset forgets the last admitted event.
func (t *Throttle) Reset() {
	t.mu.Lock()
	t.last = time.Time{}
	t.mu.Unlock()
}
