package teien

import (
	"testing"
)

func BenchmarkEventBusPublishNoHandlers(b *testing.B) {
	bus := &EventBus{}
	event := testEvent{Value: 42}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, event)
	}
}

func BenchmarkEventBusPublishOneHandler(b *testing.B) {
	bus := &EventBus{}
	Subscribe(bus, func(e testEvent) {})
	event := testEvent{Value: 42}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, event)
	}
}

// Entity creation publishes EntityCreated; this measures the overhead a
// subscribed system adds to the factory.
func BenchmarkNewEntityWithSubscriber(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				s := NewScene(size)
				Subscribe(s.Events(), func(e EntityCreated) {})
				b.StartTimer()
				for range size {
					s.NewEntity("e")
				}
			}
			b.ReportAllocs()
		})
	}
}
