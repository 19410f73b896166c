package ports_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

func TestSessionID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{name: "nil context", ctx: nil, want: ""},
		{name: "untagged", ctx: context.Background(), want: ""},
		{name: "tagged", ctx: ports.WithSessionID(context.Background(), "abc"), want: "abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ports.SessionID(tt.ctx))
		})
	}
}

func TestNewSessionTagsContext(t *testing.T) {
	t.Parallel()

	ctx, id := ports.NewSession(context.Background())
	assert.Equal(t, id, ports.SessionID(ctx))

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	_, other := ports.NewSession(context.Background())
	assert.NotEqual(t, id, other)
}
