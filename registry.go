package teien

import (
	"reflect"

	"github.com/rs/zerolog"
)

// componentStore is the type-erased view of a ComponentPool used for
// operations that only know the component type at runtime.
type componentStore interface {
	Type() reflect.Type
	Len() int
	Contains(id EntityID) bool
	Remove(id EntityID) bool
	Clear()
}

// ComponentMaps is a Scene's registry of component pools, one per component
// type, created on first use and kept for the lifetime of the Scene.
type ComponentMaps struct {
	pools  []componentStore
	types  map[reflect.Type]int
	logger *zerolog.Logger
}

func newComponentMaps(logger *zerolog.Logger) *ComponentMaps {
	return &ComponentMaps{
		pools:  make([]componentStore, 0, 16),
		types:  make(map[reflect.Type]int, 16),
		logger: logger,
	}
}

func componentTypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// EnsurePool returns the pool for T, creating it if this is the first use of
// T in the registry.
func EnsurePool[T any](cm *ComponentMaps) *ComponentPool[T] {
	t := componentTypeOf[T]()
	if idx, ok := cm.types[t]; ok {
		return cm.pools[idx].(*ComponentPool[T])
	}
	p := NewComponentPool[T]()
	cm.types[t] = len(cm.pools)
	cm.pools = append(cm.pools, p)
	cm.logger.Debug().
		Str("component", t.String()).
		Int("total_pools", len(cm.pools)).
		Msg("component pool created")
	return p
}

// PoolOf returns the pool for T if one exists.
func PoolOf[T any](cm *ComponentMaps) (*ComponentPool[T], bool) {
	idx, ok := cm.types[componentTypeOf[T]()]
	if !ok {
		return nil, false
	}
	return cm.pools[idx].(*ComponentPool[T]), true
}

// HasPool reports whether a pool for T has been created.
func HasPool[T any](cm *ComponentMaps) bool {
	_, ok := cm.types[componentTypeOf[T]()]
	return ok
}

// RemoveByType removes id's component of runtime type t. It is a no-op if
// there is no such pool or component.
func (cm *ComponentMaps) RemoveByType(t reflect.Type, id EntityID) bool {
	idx, ok := cm.types[t]
	if !ok {
		return false
	}
	return cm.pools[idx].Remove(id)
}

// RemoveEntity removes every component of id and returns the types that were
// removed, in pool creation order.
func (cm *ComponentMaps) RemoveEntity(id EntityID) []reflect.Type {
	var removed []reflect.Type
	for _, p := range cm.pools {
		if p.Remove(id) {
			removed = append(removed, p.Type())
		}
	}
	return removed
}

// ComponentsOf lists the component types id currently has, in pool creation
// order.
func (cm *ComponentMaps) ComponentsOf(id EntityID) []reflect.Type {
	var ts []reflect.Type
	for _, p := range cm.pools {
		if p.Contains(id) {
			ts = append(ts, p.Type())
		}
	}
	return ts
}

// Types lists the registered component types in creation order.
func (cm *ComponentMaps) Types() []reflect.Type {
	ts := make([]reflect.Type, len(cm.pools))
	for i, p := range cm.pools {
		ts[i] = p.Type()
	}
	return ts
}

// Len returns the number of pools.
func (cm *ComponentMaps) Len() int {
	return len(cm.pools)
}

// Clear empties every pool. The pools themselves stay registered so that
// previously obtained pool pointers keep working.
func (cm *ComponentMaps) Clear() {
	for _, p := range cm.pools {
		p.Clear()
	}
}
