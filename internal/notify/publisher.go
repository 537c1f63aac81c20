package notify

import (
	"context"
	"log"
	"time"
)

const (
	TopicRequestTesting  = "update.request.testing"
	TopicRequestBatched  = "update.request.batched"
	TopicRequestStable   = "update.request.stable"
	TopicRequestRevoke   = "update.request.revoke"
	TopicRequestObsolete = "update.request.obsolete"
	TopicRequestUnpush   = "update.request.unpush"
	TopicComment         = "update.comment"
	TopicCreate          = "update.create"
	TopicEdit            = "update.edit"
	TopicKarmaThreshold  = "update.karma.threshold"
	TopicRequirementsMet = "update.requirements_met.stable"
	TopicComposeStart    = "compose.start"
	TopicComposeComplete = "compose.complete"
	TopicOverrideTag     = "buildroot_override.tag"
	TopicOverrideUntag   = "buildroot_override.untag"
)

// Event is one message on the bus.
type Event struct {
	ID    int64          `json:"id,omitempty"`
	Topic string         `json:"topic"`
	Agent string         `json:"agent,omitempty"`
	Body  map[string]any `json:"body"`
	At    time.Time      `json:"at"`
}

// Publisher sends events. Delivery is fire-and-forget; at-least-once is fine.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Fanout publishes to every publisher, logging failures instead of stopping.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, e Event) error {
	for _, p := range f {
		if err := p.Publish(ctx, e); err != nil {
			log.Printf("[notify] publish %s failed: %v", e.Topic, err)
		}
	}
	return nil
}

// Discard drops every event.
type Discard struct{}

func (Discard) Publish(context.Context, Event) error { return nil }
