// internal/handler/event_bus.go
package handler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is one system event streamed to websocket subscribers
type Event struct {
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// EventBus fans events out to subscribers
type EventBus struct {
	subscribers map[int]chan Event
	nextID      int
	mutex       sync.Mutex
	logger      *zap.Logger
}

// NewEventBus creates a new event bus
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		subscribers: make(map[int]chan Event),
		logger:      logger,
	}
}

// Publish delivers an event to every subscriber. Slow subscribers drop
// events instead of blocking the publisher.
func (eb *EventBus) Publish(event Event) {
	event.Timestamp = time.Now()

	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	for id, subscriber := range eb.subscribers {
		select {
		case subscriber <- event:
		default:
			eb.logger.Warn("Dropping event for slow subscriber",
				zap.Int("subscriber", id),
				zap.String("event_type", event.Type),
			)
		}
	}
}

// Subscribe registers a new subscriber and returns its channel plus an
// unsubscribe function.
func (eb *EventBus) Subscribe() (<-chan Event, func()) {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	id := eb.nextID
	eb.nextID++

	ch := make(chan Event, 100)
	eb.subscribers[id] = ch

	unsubscribe := func() {
		eb.mutex.Lock()
		defer eb.mutex.Unlock()
		if sub, ok := eb.subscribers[id]; ok {
			delete(eb.subscribers, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}
