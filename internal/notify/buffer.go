package notify

import (
	"context"
	"log"
	"sync"
)

// Buffer collects events produced inside a transaction so they can be sent
// once it commits. A rolled back transaction simply drops its buffer.
type Buffer struct {
	mu     sync.Mutex
	events []Event
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Publish(_ context.Context, e Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

// Events returns a copy of the buffered events.
func (b *Buffer) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.events...)
}

// Topics lists buffered topics in order.
func (b *Buffer) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	topics := make([]string, 0, len(b.events))
	for _, e := range b.events {
		topics = append(topics, e.Topic)
	}
	return topics
}

// Flush sends every buffered event to pub and empties the buffer.
func (b *Buffer) Flush(ctx context.Context, pub Publisher) {
	b.mu.Lock()
	events := b.events
	b.events = nil
	b.mu.Unlock()

	for _, e := range events {
		if err := pub.Publish(ctx, e); err != nil {
			log.Printf("[notify] dropping %s event: %v", e.Topic, err)
		}
	}
}
