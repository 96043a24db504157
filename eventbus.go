package teien

import (
	"reflect"
	"slices"
)

// EventBus dispatches typed events synchronously to the handlers subscribed to
// that type, in subscription order. Handlers may subscribe or unsubscribe
// while an event is being delivered; the change applies from the next
// Publish.
type EventBus struct {
	topics map[reflect.Type][]subscriber
	nextID uint64
}

type subscriber struct {
	id uint64
	fn any
}

// Subscription identifies one handler registered on an EventBus.
type Subscription struct {
	bus   *EventBus
	topic reflect.Type
	id    uint64
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) Subscription {
	if bus.topics == nil {
		bus.topics = make(map[reflect.Type][]subscriber)
	}
	t := reflect.TypeFor[T]()
	bus.nextID++
	bus.topics[t] = append(bus.topics[t], subscriber{id: bus.nextID, fn: handler})
	return Subscription{bus: bus, topic: t, id: bus.nextID}
}

// Unsubscribe removes the handler. It reports false if it was already
// removed.
func (s Subscription) Unsubscribe() bool {
	if s.bus == nil {
		return false
	}
	subs := s.bus.topics[s.topic]
	i := slices.IndexFunc(subs, func(sub subscriber) bool { return sub.id == s.id })
	if i < 0 {
		return false
	}
	// A Publish in progress ranges over the old slice.
	s.bus.topics[s.topic] = slices.Delete(slices.Clone(subs), i, i+1)
	return true
}

// Publish delivers event to every handler subscribed to T. Publishing a type
// nobody subscribed to does nothing.
func Publish[T any](bus *EventBus, event T) {
	for _, sub := range bus.topics[reflect.TypeFor[T]()] {
		sub.fn.(func(T))(event)
	}
}

// Subscribers returns the number of handlers subscribed to T.
func Subscribers[T any](bus *EventBus) int {
	return len(bus.topics[reflect.TypeFor[T]()])
}
