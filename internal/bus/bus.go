// Package bus is the in-process channel layer between the capture listener,
// the config watcher and the overlay loop.
package bus

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Event is a message published on the bus. Kind is a dot-separated topic
// ("input.key", "config.reloaded"); Payload carries the typed value.
type Event struct {
	Kind    string
	At      time.Time
	Payload any
}

// Bus is a publish/subscribe hub with topic-prefix filtering. Publishing
// never blocks: a subscriber whose buffer is full loses the event, which
// bounds queue growth when a consumer stalls.
type Bus struct {
	mu      sync.RWMutex
	subs    map[int]*subscription
	next    int
	dropped atomic.Uint64
}

type subscription struct {
	prefix string
	ch     chan Event
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[int]*subscription)}
}

// Publish delivers the event to every subscriber whose prefix matches
// the event kind.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !strings.HasPrefix(evt.Kind, sub.prefix) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			b.dropped.Add(1)
		}
	}
}

// Subscribe returns a buffered channel receiving events whose kind starts
// with prefix, and a function to unsubscribe.
func (b *Bus) Subscribe(prefix string, bufSize int) (<-chan Event, func()) {
	ch := make(chan Event, bufSize)
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = &subscription{prefix: prefix, ch: ch}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Dropped reports how many events were discarded on full subscriber buffers.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}
