package teien

import "reflect"

// The events below are published on Scene.Events. Delivery is synchronous:
// the scene is already in its new state when a handler runs.

// EntityCreated follows NewEntity and EmplaceBack.
type EntityCreated struct {
	Entity RefEntity
	// Parent is NoEntity for roots.
	Parent EntityID
}

// EntityRemoved is published once per destroyed entity, children before
// their parent. By then the whole removed subtree is dead and its
// components are gone, each announced by a ComponentRemoved first.
type EntityRemoved struct {
	ID   EntityID
	Name string
}

// EntityReparented follows SetParent and Detach.
type EntityReparented struct {
	Entity    RefEntity
	OldParent EntityID
	NewParent EntityID
}

// ComponentAdded follows AddComponent and EmplaceComponent.
type ComponentAdded struct {
	Entity EntityID
	Type   reflect.Type
	// Replaced is set when the entity already had a component of this type.
	Replaced bool
}

// ComponentRemoved follows RemoveComponent, and is published for every
// component an entity loses when it is removed.
type ComponentRemoved struct {
	Entity EntityID
	Type   reflect.Type
}
