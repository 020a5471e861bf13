package events

import "sync"

// Event is a generic type placeholder for any event type
type Event any

// Subscriber is a channel that receives events of type T
type Subscriber[T Event] chan T

// EventBus fans out menu events to every subscriber. Publishing never
// blocks: a subscriber that falls behind its buffer misses the event.
type EventBus[T Event] struct {
	subscribers map[Subscriber[T]]struct{}
	bufferSize  int
	mutex       sync.RWMutex
}

func NewEventBus[T Event]() *EventBus[T] {
	return &EventBus[T]{
		subscribers: make(map[Subscriber[T]]struct{}),
		bufferSize:  100,
	}
}

func (bus *EventBus[T]) Subscribe() Subscriber[T] {
	ch := make(Subscriber[T], bus.bufferSize)
	bus.mutex.Lock()
	bus.subscribers[ch] = struct{}{}
	bus.mutex.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes its channel. The channel
// must not be used after this returns.
func (bus *EventBus[T]) Unsubscribe(ch Subscriber[T]) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	if _, ok := bus.subscribers[ch]; !ok {
		return
	}
	delete(bus.subscribers, ch)
	close(ch)
}

// Publish delivers the event to all current subscribers, skipping any
// whose buffer is full.
func (bus *EventBus[T]) Publish(event T) {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()

	for subscriber := range bus.subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}
}
