package events

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dying-condition/internal/logging"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(ctx context.Context, event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewBus creates a new event bus
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		logger:    logging.OrNop(logger).Named("events"),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Sort by priority
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	b.logger.Debug("subscribed listener",
		zap.String("listener", listener.ID()),
		zap.String("event", string(eventType)),
		zap.Int("priority", listener.Priority()))
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		b.logger.Debug("unsubscribed listener",
			zap.String("listener", listenerID),
			zap.String("event", string(eventType)))
		return
	}
}

// Emit sends an event to all registered listeners in priority order
func (b *Bus) Emit(ctx context.Context, event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	b.logger.Debug("emitting event",
		zap.String("event", string(event.GetType())),
		zap.String("character_id", event.GetCharacterID()),
		zap.Int("listeners", len(listeners)))

	for _, listener := range listeners {
		if event.IsCancelled() {
			b.logger.Debug("event cancelled, stopping propagation",
				zap.String("event", string(event.GetType())))
			break
		}

		if err := listener.HandleEvent(ctx, event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}
