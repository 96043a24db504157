package teien

// Filter iterates the enabled entities that have a component of type T, in
// the pool's dense order. It is the cursor systems use for their per-frame
// pass: it walks the dense array directly and pairs every component with its
// owner through the pool's reverse lookup.
//
// Removing T components while a filter is iterating is not supported; collect
// the ids first and remove afterwards. Creating entities is fine: Entity
// resolves the current id on every call.
type Filter[T any] struct {
	scene           *Scene
	pool            *ComponentPool[T]
	curID           EntityID
	layers          LayerMask
	curIdx          int
	includeDisabled bool
}

// NewFilter creates a filter over T, creating the pool for T if needed.
//
// Example:
//
//	f := teien.NewFilter[Position](scene)
//	for f.Next() {
//	    pos := f.Get()
//	    // ... process f.Entity()
//	}
func NewFilter[T any](s *Scene) *Filter[T] {
	return &Filter[T]{
		scene:  s,
		pool:   EnsurePool[T](s.components),
		curID:  NoEntity,
		curIdx: -1,
	}
}

// WithLayers restricts the filter to entities sharing at least one layer with
// m. A zero mask disables the restriction.
func (f *Filter[T]) WithLayers(m LayerMask) *Filter[T] {
	f.layers = m
	return f
}

// IncludeDisabled makes the filter visit disabled entities too.
func (f *Filter[T]) IncludeDisabled() *Filter[T] {
	f.includeDisabled = true
	return f
}

// Reset rewinds the filter to the start of the pool.
func (f *Filter[T]) Reset() {
	f.curIdx = -1
	f.curID = NoEntity
}

// Next advances to the next matching entity, returning false at the end.
func (f *Filter[T]) Next() bool {
	for f.curIdx++; f.curIdx < f.pool.Len(); f.curIdx++ {
		id := f.pool.EntityID(f.curIdx)
		if accept(f.scene.Entity(id), f.layers, f.includeDisabled) {
			f.curID = id
			return true
		}
	}
	f.curID = NoEntity
	return false
}

// Entity returns the current entity, or nil once the filter is exhausted.
// Like Scene.Entity, the pointer is only good until the next entity is
// created.
func (f *Filter[T]) Entity() *Entity {
	return f.scene.Entity(f.curID)
}

// Ref returns a reference to the current entity.
func (f *Filter[T]) Ref() RefEntity {
	return f.scene.Ref(f.curID)
}

// Get returns the current entity's component. The pointer stays valid until
// the T pool changes.
func (f *Filter[T]) Get() *T {
	return f.pool.At(f.curIdx)
}

// Entities collects the ids of every matching entity.
func (f *Filter[T]) Entities() []EntityID {
	var ids []EntityID
	for i := range f.pool.Len() {
		id := f.pool.EntityID(i)
		if accept(f.scene.Entity(id), f.layers, f.includeDisabled) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Filter2 iterates the enabled entities that have both an A and a B. It walks
// the dense array of A and joins B through its sparse lookup, so put the
// rarer component first.
type Filter2[A, B any] struct {
	scene           *Scene
	poolA           *ComponentPool[A]
	poolB           *ComponentPool[B]
	curID           EntityID
	layers          LayerMask
	curIdx          int
	curB            int
	includeDisabled bool
}

// NewFilter2 creates a filter over entities with both A and B.
func NewFilter2[A, B any](s *Scene) *Filter2[A, B] {
	return &Filter2[A, B]{
		scene:  s,
		poolA:  EnsurePool[A](s.components),
		poolB:  EnsurePool[B](s.components),
		curID:  NoEntity,
		curIdx: -1,
	}
}

// WithLayers restricts the filter to entities sharing at least one layer with
// m.
func (f *Filter2[A, B]) WithLayers(m LayerMask) *Filter2[A, B] {
	f.layers = m
	return f
}

// IncludeDisabled makes the filter visit disabled entities too.
func (f *Filter2[A, B]) IncludeDisabled() *Filter2[A, B] {
	f.includeDisabled = true
	return f
}

// Reset rewinds the filter to the start of the A pool.
func (f *Filter2[A, B]) Reset() {
	f.curIdx = -1
	f.curID = NoEntity
}

// Next advances to the next entity having both components.
func (f *Filter2[A, B]) Next() bool {
	for f.curIdx++; f.curIdx < f.poolA.Len(); f.curIdx++ {
		id := f.poolA.EntityID(f.curIdx)
		j, ok := f.poolB.DenseIndex(id)
		if !ok {
			continue
		}
		if accept(f.scene.Entity(id), f.layers, f.includeDisabled) {
			f.curID = id
			f.curB = j
			return true
		}
	}
	f.curID = NoEntity
	return false
}

// Entity returns the current entity, resolved by id like Filter.Entity.
func (f *Filter2[A, B]) Entity() *Entity {
	return f.scene.Entity(f.curID)
}

// Ref returns a reference to the current entity.
func (f *Filter2[A, B]) Ref() RefEntity {
	return f.scene.Ref(f.curID)
}

// Get returns both components of the current entity.
func (f *Filter2[A, B]) Get() (*A, *B) {
	return f.poolA.At(f.curIdx), f.poolB.At(f.curB)
}

func accept(e *Entity, layers LayerMask, includeDisabled bool) bool {
	if e == nil {
		return false
	}
	if !includeDisabled && !e.enabled {
		return false
	}
	return layers.IsZero() || e.layer.Intersects(layers)
}
