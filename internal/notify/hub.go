package notify

import (
	"context"
	"sync"
	"sync/atomic"
)

type subscriber struct {
	ch chan Event
}

// Hub fans events out to live subscribers, such as websocket clients.
// Slow subscribers lose events rather than block publishers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	seq         atomic.Int64
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
	}
}

func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &subscriber{ch: make(chan Event, 256)}
	h.subscribers[sub] = struct{}{}

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, sub)
			close(sub.ch)
		})
	}
	return sub.ch, unsub
}

func (h *Hub) Publish(_ context.Context, e Event) error {
	e.ID = h.seq.Add(1)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		select {
		case sub.ch <- e:
		default:
		}
	}
	return nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
