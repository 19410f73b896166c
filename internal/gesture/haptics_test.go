package gesture

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

func TestBellHapticsRingsAboveMinimum(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewBellHaptics(buf, 20*time.Millisecond)

	require.NoError(t, h.Pulse(ports.HapticLight))
	require.NoError(t, h.Pulse(ports.HapticMedium))
	require.NoError(t, h.Pulse(ports.HapticHeavy))

	assert.Equal(t, "\a\a", buf.String())
}

func TestBellHapticsZeroMinimumRingsForEveryCue(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewBellHaptics(buf, 0)
	require.NoError(t, h.Pulse(ports.HapticLight))

	assert.Equal(t, "\a", buf.String())
}

func TestHapticsUnavailable(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NoHaptics{}.Pulse(ports.HapticLight), ErrHapticsUnavailable)
	assert.ErrorIs(t, NewBellHaptics(nil, 0).Pulse(ports.HapticHeavy), ErrHapticsUnavailable)
}

func TestHapticStyleDurations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10*time.Millisecond, ports.HapticLight.Duration())
	assert.Equal(t, 20*time.Millisecond, ports.HapticMedium.Duration())
	assert.Equal(t, 30*time.Millisecond, ports.HapticHeavy.Duration())
	assert.Equal(t, "medium", ports.HapticMedium.String())
}
