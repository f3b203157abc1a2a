package eventbus

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// SubscriberFunc receives a published event payload.
type SubscriberFunc func(ctx context.Context, routingKey string, payload []byte)

// InProcessBus delivers events synchronously to prefix-matched subscribers.
// It stands in for RabbitMQ when no broker is configured.
type InProcessBus struct {
	mu          sync.RWMutex
	subscribers map[string][]SubscriberFunc
	logger      *slog.Logger
}

// NewInProcessBus creates an empty in-process bus.
func NewInProcessBus(logger *slog.Logger) *InProcessBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessBus{
		subscribers: make(map[string][]SubscriberFunc),
		logger:      logger,
	}
}

// Subscribe registers a handler for every routing key with the given
// prefix. An empty prefix matches everything.
func (b *InProcessBus) Subscribe(prefix string, fn SubscriberFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[prefix] = append(b.subscribers[prefix], fn)
}

// Publish dispatches the payload to all matching subscribers in the calling
// goroutine.
func (b *InProcessBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	dispatched := 0
	for prefix, fns := range b.subscribers {
		if !strings.HasPrefix(routingKey, prefix) {
			continue
		}
		for _, fn := range fns {
			fn(ctx, routingKey, payload)
			dispatched++
		}
	}

	b.logger.Debug("event dispatched in process",
		"routing_key", routingKey,
		"subscribers", dispatched,
	)
	return nil
}

// Close is a no-op for the in-process bus.
func (b *InProcessBus) Close() error { return nil }
