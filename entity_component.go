package teien

import (
	"fmt"
	"reflect"

	"github.com/rotisserie/eris"
)

// AddComponent gives e a component of type T with value v, creating the pool
// for T on first use. If e already has a T it is overwritten in place.
func AddComponent[T any](e *Entity, v T) Ref[T] {
	pool, replaced := prepareAdd[T](e)
	ref := pool.AddRef(e.id, v)
	Publish(e.scene.events, ComponentAdded{Entity: e.id, Type: pool.Type(), Replaced: replaced})
	return ref
}

// EmplaceComponent gives e a zero T and lets init fill it in place.
func EmplaceComponent[T any](e *Entity, init func(*T)) Ref[T] {
	pool, replaced := prepareAdd[T](e)
	ref := pool.Emplace(e.id, init)
	Publish(e.scene.events, ComponentAdded{Entity: e.id, Type: pool.Type(), Replaced: replaced})
	return ref
}

func prepareAdd[T any](e *Entity) (*ComponentPool[T], bool) {
	if !e.alive {
		panic(fmt.Sprintf("teien: add %s to removed entity %s", typeName[T](), e.id))
	}
	pool := EnsurePool[T](e.scene.components)
	replaced := pool.Contains(e.id)
	if replaced {
		e.scene.logger.Debug().
			Uint32("entity_id", uint32(e.id)).
			Str("component", pool.Type().String()).
			Msg("component replaced")
	}
	return pool, replaced
}

// GetComponent returns a handle to e's component of type T. It fails with
// ErrPoolNotFound when no pool for T exists yet and with ErrComponentNotFound
// when e has no T.
func GetComponent[T any](e *Entity) (Ref[T], error) {
	pool, err := poolFor[T](e)
	if err != nil {
		return Ref[T]{id: NoEntity}, err
	}
	return pool.Ref(e.id), nil
}

// GetConstComponent is GetComponent returning a read-only handle.
func GetConstComponent[T any](e *Entity) (ConstRef[T], error) {
	pool, err := poolFor[T](e)
	if err != nil {
		return ConstRef[T]{id: NoEntity}, err
	}
	return pool.ConstRef(e.id), nil
}

// MustGetComponent is GetComponent for callers that treat a missing
// component as a programming error. It panics instead of returning an error.
func MustGetComponent[T any](e *Entity) Ref[T] {
	ref, err := GetComponent[T](e)
	if err != nil {
		panic(eris.ToString(err, false))
	}
	return ref
}

func poolFor[T any](e *Entity) (*ComponentPool[T], error) {
	pool, ok := PoolOf[T](e.scene.components)
	if !ok {
		return nil, eris.Wrapf(ErrPoolNotFound, "component %s", typeName[T]())
	}
	if !pool.Contains(e.id) {
		return nil, eris.Wrapf(ErrComponentNotFound, "entity %s (%s): component %s", e.id, e.name, typeName[T]())
	}
	return pool, nil
}

// HasComponent reports whether e has a component of type T.
func HasComponent[T any](e *Entity) bool {
	pool, ok := PoolOf[T](e.scene.components)
	return ok && pool.Contains(e.id)
}

// RemoveComponent drops e's component of type T. It reports false, and does
// nothing, if e has none.
func RemoveComponent[T any](e *Entity) bool {
	return e.RemoveComponentByType(componentTypeOf[T]())
}

// RemoveComponentByType drops e's component of runtime type t.
func (e *Entity) RemoveComponentByType(t reflect.Type) bool {
	if !e.scene.components.RemoveByType(t, e.id) {
		return false
	}
	Publish(e.scene.events, ComponentRemoved{Entity: e.id, Type: t})
	return true
}

// Components lists the types of the components e has.
func (e *Entity) Components() []reflect.Type {
	return e.scene.components.ComponentsOf(e.id)
}
