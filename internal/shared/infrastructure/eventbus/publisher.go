// Package eventbus carries domain events out of the command handlers,
// either to RabbitMQ or to in-process subscribers when no broker is
// configured.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/serendip/internal/shared/domain"
)

// Publisher defines the interface for publishing events to a message broker.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// PublishEvents marshals domain events and publishes each under its routing
// key. Publishing stops at the first failure.
func PublishEvents(ctx context.Context, p Publisher, events ...domain.DomainEvent) error {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", event.RoutingKey(), err)
		}
		if err := p.Publish(ctx, event.RoutingKey(), payload); err != nil {
			return fmt.Errorf("publish event %s: %w", event.RoutingKey(), err)
		}
	}
	return nil
}
