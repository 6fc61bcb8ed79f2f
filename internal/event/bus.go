// Package event provides the in-memory bus that carries discovery
// lifecycle events (topology.discovery.completed and friends) between
// modules without coupling publishers to their consumers.
package event

import (
	"context"
	"sync"

	"github.com/HerbHall/netvantage/pkg/plugin"
	"go.uber.org/zap"
)

var _ plugin.EventBus = (*Bus)(nil)

// Bus implements plugin.EventBus. Publish runs handlers in the caller's
// goroutine so a discovery request observes its own notifications;
// PublishAsync hands each handler its own goroutine. A panicking handler
// is logged and isolated so one bad consumer never loses an event for
// the others.
type Bus struct {
	mu        sync.RWMutex
	byTopic   map[string][]subscriber
	wildcards []subscriber
	lastID    uint64
	logger    *zap.Logger
}

// subscriber is one registered handler. The id makes unsubscribing exact
// even when the same function is registered twice.
type subscriber struct {
	id      uint64
	handler plugin.EventHandler
}

// NewBus creates an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		byTopic: make(map[string][]subscriber),
		logger:  logger,
	}
}

// Publish dispatches an event synchronously to the topic's handlers,
// then to wildcard subscribers.
func (b *Bus) Publish(ctx context.Context, event plugin.Event) error {
	for _, s := range b.snapshot(event.Topic) {
		b.dispatch(ctx, s.handler, event)
	}
	return nil
}

// PublishAsync dispatches an event without waiting for handlers.
func (b *Bus) PublishAsync(ctx context.Context, event plugin.Event) {
	for _, s := range b.snapshot(event.Topic) {
		go b.dispatch(ctx, s.handler, event)
	}
}

// snapshot copies the handler set for a topic under the read lock, so
// dispatch runs without holding it and handlers may themselves
// subscribe or unsubscribe.
func (b *Bus) snapshot(topic string) []subscriber {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subs := make([]subscriber, 0, len(b.byTopic[topic])+len(b.wildcards))
	subs = append(subs, b.byTopic[topic]...)
	subs = append(subs, b.wildcards...)
	return subs
}

// Subscribe registers a handler for one topic and returns its
// unsubscribe function.
func (b *Bus) Subscribe(topic string, handler plugin.EventHandler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.lastID
	b.lastID++
	b.byTopic[topic] = append(b.byTopic[topic], subscriber{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.byTopic[topic] = remove(b.byTopic[topic], id)
	}
}

// SubscribeAll registers a handler for every topic and returns its
// unsubscribe function.
func (b *Bus) SubscribeAll(handler plugin.EventHandler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.lastID
	b.lastID++
	b.wildcards = append(b.wildcards, subscriber{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.wildcards = remove(b.wildcards, id)
	}
}

func remove(subs []subscriber, id uint64) []subscriber {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}

func (b *Bus) dispatch(ctx context.Context, handler plugin.EventHandler, event plugin.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("topic", event.Topic),
				zap.String("source", event.Source),
				zap.Any("panic", r),
			)
		}
	}()
	handler(ctx, event)
}
