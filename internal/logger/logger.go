package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog and implements ports.Logger.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes the supplied key/value
// pairs.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{base: l.base.With().Fields(pairs(fields)).Logger()}
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, l.base.Debug(), msg, fields)
}

// Info writes an informational log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, l.base.Info(), msg, fields)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error log entry. An "error" field holding an error value
// is recorded with zerolog's error marshalling.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, l.base.Error(), msg, fields)
}

func (l *Logger) write(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if l == nil || event == nil {
		return
	}
	if id := ports.SessionID(ctx); id != "" {
		event = event.Str("session_id", id)
	}
	kv := pairs(fields)
	if err, ok := kv["error"].(error); ok {
		event = event.Err(err)
		delete(kv, "error")
	}
	event.Fields(kv).Msg(msg)
}

// pairs folds alternating key/value arguments into a map, skipping
// non-string keys and a trailing key without a value.
func pairs(fields []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		out[key] = fields[i+1]
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
