package gesture

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

// ErrHapticsUnavailable is returned by sinks that cannot produce feedback.
var ErrHapticsUnavailable = errors.New("haptic feedback unavailable")

// NoHaptics is a sink for platforms without haptic capability.
type NoHaptics struct{}

// Pulse implements ports.Haptics.
func (NoHaptics) Pulse(ports.HapticStyle) error {
	return ErrHapticsUnavailable
}

// BellHaptics approximates haptics in a terminal by ringing the bell for
// cues whose pulse lasts at least a minimum duration. Shorter cues are
// swallowed so dragging across cells stays quiet.
type BellHaptics struct {
	mu  sync.Mutex
	out io.Writer
	min time.Duration
}

// NewBellHaptics rings the bell on out for cues of at least min duration.
func NewBellHaptics(out io.Writer, min time.Duration) *BellHaptics {
	return &BellHaptics{out: out, min: min}
}

// Pulse implements ports.Haptics.
func (b *BellHaptics) Pulse(style ports.HapticStyle) error {
	if b == nil || b.out == nil {
		return ErrHapticsUnavailable
	}
	if style.Duration() < b.min {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.out, "\a")
	return err
}
