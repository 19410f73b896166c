package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.With("component", "controller").Info(context.Background(), "grid resized", "rows", 4, "cols", 6)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "grid resized", entry["message"])
	require.Equal(t, "controller", entry["component"])
	require.EqualValues(t, 4, entry["rows"])
	require.EqualValues(t, 6, entry["cols"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf, Component: "watcher"})
	require.NoError(t, err)

	ctx := ports.WithSessionID(context.Background(), "session-1")
	log.Error(ctx, "reload failed", "error", errors.New("boom"), "path", "picker.yaml")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "reload failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "picker.yaml", entry["path"])
	require.Equal(t, "session-1", entry["session_id"])
	require.Equal(t, "watcher", entry["component"])
	require.Equal(t, "error", entry["level"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse log level")
}

func TestLoggerIgnoresMalformedPairs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warn(context.Background(), "odd fields", 42, "skipped", "dangling")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.NotContains(t, entry, "dangling")
	require.NotContains(t, entry, "42")
}

func TestNopLoggerDiscards(t *testing.T) {
	t.Parallel()

	log := NewNop()
	require.NotPanics(t, func() {
		log.Info(context.Background(), "nothing")
		log.With("k", "v").Error(context.Background(), "nothing", "error", errors.New("x"))
	})
}
