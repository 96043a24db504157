package teien

// Ref is a stable handle to the component of type T owned by one entity.
//
// A Ref stores the pool and the entity id, never an address: every access
// resolves the id through the pool's sparse array again. It therefore keeps
// working while other entities' components are added to or removed from the
// same pool. It does not survive the removal of its own component; Get panics
// in that case.
//
// Refs are cheap to copy and are meant to be stored inside other components,
// e.g. a collider referring to a transform.
type Ref[T any] struct {
	pool *ComponentPool[T]
	id   EntityID
}

// Valid reports whether the handle names an entity.
func (r Ref[T]) Valid() bool {
	return r.pool != nil && r.id.Valid()
}

// ID returns the entity the handle refers to.
func (r Ref[T]) ID() EntityID {
	return r.id
}

// Get resolves the handle to the current location of the component.
func (r Ref[T]) Get() *T {
	return r.pool.Get(r.id)
}

// TryGet resolves the handle, reporting false if the component is gone.
func (r Ref[T]) TryGet() (*T, bool) {
	if !r.Valid() {
		return nil, false
	}
	return r.pool.TryGet(r.id)
}

// Const returns a read-only view of the same component.
func (r Ref[T]) Const() ConstRef[T] {
	return ConstRef[T]{pool: r.pool, id: r.id}
}

// ConstRef is the read-only counterpart of Ref. Get hands out a copy of the
// component so the stored value cannot be changed through it.
type ConstRef[T any] struct {
	pool *ComponentPool[T]
	id   EntityID
}

// Valid reports whether the handle was issued by a pool for a real entity.
func (r ConstRef[T]) Valid() bool {
	return r.pool != nil && r.id.Valid()
}

// ID returns the owning entity.
func (r ConstRef[T]) ID() EntityID {
	return r.id
}

// Get returns the current value of the component.
func (r ConstRef[T]) Get() T {
	return *r.pool.Get(r.id)
}

// TryGet returns the current value, reporting false if the component is gone.
func (r ConstRef[T]) TryGet() (T, bool) {
	if !r.Valid() {
		var zero T
		return zero, false
	}
	c, ok := r.pool.TryGet(r.id)
	if !ok {
		var zero T
		return zero, false
	}
	return *c, true
}
