package teien

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEvent struct {
	Value int
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e testEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e testEvent) {
		received += e.Value * 2
	})
	Publish(bus, testEvent{Value: 1})
	assert.Equal(t, 3, received)
	Publish(bus, testEvent{Value: 2})
	assert.Equal(t, 9, received)
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	assert.NotPanics(t, func() { Publish(bus, testEvent{Value: 42}) })
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := &EventBus{}
	var got []string
	first := Subscribe(bus, func(e testEvent) { got = append(got, "first") })
	var second Subscription
	second = Subscribe(bus, func(e testEvent) {
		got = append(got, "second")
		second.Unsubscribe()
	})
	Subscribe(bus, func(e testEvent) { got = append(got, "third") })
	assert.Equal(t, 3, Subscribers[testEvent](bus))

	Publish(bus, testEvent{})
	assert.Equal(t, []string{"first", "second", "third"}, got, "removal applies from the next publish")
	assert.Equal(t, 2, Subscribers[testEvent](bus))

	assert.True(t, first.Unsubscribe())
	assert.False(t, first.Unsubscribe())
	assert.False(t, Subscription{}.Unsubscribe())

	got = nil
	Publish(bus, testEvent{})
	assert.Equal(t, []string{"third"}, got)
}

func TestSceneLifecycleEvents(t *testing.T) {
	scene := NewScene(4)
	var log []string
	Subscribe(scene.Events(), func(e EntityCreated) {
		log = append(log, "created "+e.Entity.Entity().Name()+" under "+e.Parent.String())
	})
	Subscribe(scene.Events(), func(e EntityReparented) {
		log = append(log, "reparented "+e.Entity.ID().String()+" "+e.OldParent.String()+"->"+e.NewParent.String())
	})
	Subscribe(scene.Events(), func(e ComponentAdded) {
		log = append(log, "added "+e.Type.String()+" replaced="+boolString(e.Replaced))
	})
	Subscribe(scene.Events(), func(e ComponentRemoved) {
		log = append(log, "removed "+e.Type.String())
	})
	Subscribe(scene.Events(), func(e EntityRemoved) {
		log = append(log, "destroyed "+e.Name)
	})

	root := scene.NewEntity("root")
	child := root.Entity().EmplaceBack("child")
	AddComponent(child.Entity(), position{})
	AddComponent(child.Entity(), position{X: 1})
	RemoveComponent[position](child.Entity())
	child.Entity().Detach()
	root.Entity().Remove()

	assert.Equal(t, []string{
		"created root under none",
		"created child under 0",
		"added teien.position replaced=false",
		"added teien.position replaced=true",
		"removed teien.position",
		"reparented 1 0->none",
		"destroyed root",
	}, log)
	assert.Equal(t, reflect.TypeFor[position](), scene.ComponentMaps().Types()[0])
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
