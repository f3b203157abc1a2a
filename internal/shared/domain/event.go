package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents something that happened in the domain.
type DomainEvent interface {
	EventID() uuid.UUID
	AggregateID() uuid.UUID
	RoutingKey() string
	OccurredAt() time.Time
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	eventID     uuid.UUID
	aggregateID uuid.UUID
	routingKey  string
	occurredAt  time.Time
}

// NewBaseEvent creates a new base event with the given routing key.
func NewBaseEvent(aggregateID uuid.UUID, routingKey string) BaseEvent {
	return BaseEvent{
		eventID:     uuid.New(),
		aggregateID: aggregateID,
		routingKey:  routingKey,
		occurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID     { return e.eventID }
func (e BaseEvent) AggregateID() uuid.UUID { return e.aggregateID }
func (e BaseEvent) RoutingKey() string     { return e.routingKey }
func (e BaseEvent) OccurredAt() time.Time  { return e.occurredAt }
