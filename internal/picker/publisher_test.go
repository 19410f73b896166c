package picker

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/logger"
	"github.com/alexisbeaulieu97/tablepick/internal/theme"
)

func TestPublisherFansOutInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	p := NewPublisher(nil)
	p.Subscribe(ListenerFuncs{OnHover: func(layout.Cell) { order = append(order, "first") }})
	sub := p.Subscribe(ListenerFuncs{OnHover: func(layout.Cell) { order = append(order, "second") }})

	p.CellHovered(layout.Cell{Row: 1, Col: 1})
	sub.Unsubscribe()
	p.CellHovered(layout.Cell{Row: 1, Col: 2})

	assert.Equal(t, []string{"first", "second", "first"}, order)
}

func TestPublisherLogsEvents(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	p := NewPublisher(log)
	p.GridExpanded(layout.GridDimensions{Rows: 11, Cols: 12})
	p.ThemeChanged(theme.Dark)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "picker event", entry["message"])
	assert.Equal(t, EventGridExpanded, entry["event_type"])
	assert.Equal(t, "events", entry["component"])
	assert.EqualValues(t, 12, entry["cols"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, EventThemeChanged, entry["event_type"])
	assert.Equal(t, "dark", entry["theme"])
}

func TestPublisherWithController(t *testing.T) {
	t.Parallel()

	ev := &events{}
	p := NewPublisher(nil)
	p.Subscribe(ev.listener())

	c := New(Options{Config: layout.Validate(layout.Partial{}), ShrinkThreshold: 2, Listener: p})
	c.SetHoveredCell(10, 3)
	require.True(t, c.SelectHovered())

	assert.Len(t, ev.hovers, 1)
	assert.Len(t, ev.expanded, 1)
	assert.Len(t, ev.selections, 1)
}
