package projectflow

import "sync"

// EventKind tags a change event with the mutation that produced it.
type EventKind string

const (
	EventCreate EventKind = "create"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// Event describes one store mutation. Cascaded changes (a task raising its
// project's hours) publish their own update events.
type Event struct {
	Kind       EventKind
	Collection Collection
	ID         string
}

// Bus fans store change events out to subscribers. A view layer subscribes to
// re-render on change; a realtime sync layer subscribes to push.
type Bus struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[chan Event]struct{})}
}

// Publish fans an event out to all subscribers.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- e:
		default:
			// subscriber is behind; drop to avoid blocking the mutation
		}
	}
	b.mu.RUnlock()
}

// Subscribe returns a buffered channel that receives all new events.
func (b *Bus) Subscribe() chan Event {
	ch := make(chan Event, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}
