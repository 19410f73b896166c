package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger writes leveled entries with alternating key/value fields. The
// session ID carried by ctx, if any, is added as session_id. Components tag
// themselves through With("component", name).
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type sessionKey struct{}

// NewSession starts a picker session: it returns ctx tagged with a fresh
// random ID, and the ID itself.
func NewSession(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return WithSessionID(ctx, id), id
}

// WithSessionID tags ctx with id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the ID ctx was tagged with, or "".
func SessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
