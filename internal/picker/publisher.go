package picker

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/logger"
	"github.com/alexisbeaulieu97/tablepick/internal/ports"
	"github.com/alexisbeaulieu97/tablepick/internal/theme"
)

// Event type names used in log entries.
const (
	EventCellHovered   = "cell_hovered"
	EventSelectionMade = "selection_made"
	EventGridExpanded  = "grid_expanded"
	EventGridShrank    = "grid_shrank"
	EventGridResized   = "grid_resized"
	EventThemeChanged  = "theme_changed"
)

// Publisher is a Listener that records every notification as a structured
// log entry and fans it out to its subscribers in subscription order.
type Publisher struct {
	log    ports.Logger
	mu     sync.RWMutex
	subs   []subscriptionEntry
	nextID int
}

// Subscription cancels a Subscribe registration.
type Subscription interface {
	Unsubscribe()
}

type subscriptionEntry struct {
	id       int
	listener Listener
}

type subscription struct {
	cancel func()
}

// Unsubscribe removes the listener. Calling it again is a no-op.
func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// NewPublisher creates a publisher that logs through log.
func NewPublisher(log ports.Logger) *Publisher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Publisher{log: log.With("component", "events")}
}

// Subscribe adds l to the fan-out list.
func (p *Publisher) Subscribe(l Listener) Subscription {
	if l == nil {
		return subscription{}
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscriptionEntry{id: id, listener: l})
	p.mu.Unlock()

	return subscription{cancel: func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, entry := range p.subs {
			if entry.id == id {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				break
			}
		}
	}}
}

// CellHovered logs the hovered cell and forwards it.
func (p *Publisher) CellHovered(cell layout.Cell) {
	p.publish(EventCellHovered, func(l Listener) { l.CellHovered(cell) }, "row", cell.Row, "col", cell.Col)
}

// SelectionMade logs the confirmed selection and forwards it.
func (p *Publisher) SelectionMade(sel layout.Selection) {
	p.publish(EventSelectionMade, func(l Listener) { l.SelectionMade(sel) }, "rows", sel.Rows, "cols", sel.Cols)
}

// GridExpanded logs the grown extent and forwards it.
func (p *Publisher) GridExpanded(dims layout.GridDimensions) {
	p.publish(EventGridExpanded, func(l Listener) { l.GridExpanded(dims) }, "rows", dims.Rows, "cols", dims.Cols)
}

// GridShrank logs the reduced extent and forwards it.
func (p *Publisher) GridShrank(dims layout.GridDimensions) {
	p.publish(EventGridShrank, func(l Listener) { l.GridShrank(dims) }, "rows", dims.Rows, "cols", dims.Cols)
}

// GridResized logs the new extent and forwards it.
func (p *Publisher) GridResized(dims layout.GridDimensions) {
	p.publish(EventGridResized, func(l Listener) { l.GridResized(dims) }, "rows", dims.Rows, "cols", dims.Cols)
}

// ThemeChanged logs the resolved theme and forwards it.
func (p *Publisher) ThemeChanged(t theme.Theme) {
	p.publish(EventThemeChanged, func(l Listener) { l.ThemeChanged(t) }, "theme", string(t))
}

func (p *Publisher) publish(eventType string, deliver func(Listener), fields ...interface{}) {
	p.log.Debug(context.Background(), "picker event", append([]interface{}{"event_type", eventType}, fields...)...)

	p.mu.RLock()
	subs := append([]subscriptionEntry(nil), p.subs...)
	p.mu.RUnlock()

	for _, entry := range subs {
		deliver(entry.listener)
	}
}

var _ Listener = (*Publisher)(nil)
