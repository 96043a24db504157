package teien

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// absent marks a sparse slot that holds no dense index.
const absent = -1

// ComponentPool is the dense storage of every component of type T in a Scene.
//
// Components live contiguously in insertion order. denseToEntity is
// index-aligned with components and entityToDense maps an entity id straight
// to a dense position, so lookups are O(1) and iteration is a linear scan over
// a plain slice.
//
// Removal preserves the relative order of the survivors. It costs O(n) in the
// pool size instead of the O(1) of a swap-remove, but systems iterating the
// dense array (draw order in particular) see a stable order.
type ComponentPool[T any] struct {
	components    []T
	denseToEntity []EntityID
	entityToDense []int
}

// NewComponentPool creates an empty pool. Pools are usually created lazily by
// a Scene through EnsurePool rather than directly.
func NewComponentPool[T any]() *ComponentPool[T] {
	return &ComponentPool[T]{}
}

// Add stores v for id and returns a pointer to the stored value. The pointer
// is only valid until the next mutation of the pool; keep a Ref across frames.
//
// If id already has a component in this pool the value is overwritten in
// place and its dense position is kept.
func (p *ComponentPool[T]) Add(id EntityID, v T) *T {
	if i, ok := p.DenseIndex(id); ok {
		p.components[i] = v
		return &p.components[i]
	}
	if id.Int() >= len(p.entityToDense) {
		p.entityToDense = growFilled(p.entityToDense, id.Int()+1, absent)
	}
	p.entityToDense[id] = len(p.components)
	p.components = append(p.components, v)
	p.denseToEntity = append(p.denseToEntity, id)
	return &p.components[len(p.components)-1]
}

// AddRef stores v for id like Add and returns a stable handle to it.
func (p *ComponentPool[T]) AddRef(id EntityID, v T) Ref[T] {
	p.Add(id, v)
	return Ref[T]{pool: p, id: id}
}

// Emplace stores the zero value of T for id, lets init fill it in place and
// returns a stable handle to it. init may be nil.
func (p *ComponentPool[T]) Emplace(id EntityID, init func(*T)) Ref[T] {
	var zero T
	c := p.Add(id, zero)
	if init != nil {
		init(c)
	}
	return Ref[T]{pool: p, id: id}
}

// Remove deletes the component of id. Every component stored after it moves
// one slot earlier. It reports whether anything was removed.
func (p *ComponentPool[T]) Remove(id EntityID) bool {
	i, ok := p.DenseIndex(id)
	if !ok {
		return false
	}
	p.components = slices.Delete(p.components, i, i+1)
	p.denseToEntity = slices.Delete(p.denseToEntity, i, i+1)
	p.entityToDense[id] = absent
	for j := i; j < len(p.denseToEntity); j++ {
		p.entityToDense[p.denseToEntity[j]] = j
	}
	return true
}

// Contains reports whether id has a component in this pool.
func (p *ComponentPool[T]) Contains(id EntityID) bool {
	_, ok := p.DenseIndex(id)
	return ok
}

// DenseIndex returns the current position of id's component in the dense
// array.
func (p *ComponentPool[T]) DenseIndex(id EntityID) (int, bool) {
	if !id.Valid() || id.Int() >= len(p.entityToDense) {
		return absent, false
	}
	i := p.entityToDense[id]
	if i == absent {
		return absent, false
	}
	return i, true
}

// Get returns id's component. The caller must have checked Contains; a
// missing component panics.
func (p *ComponentPool[T]) Get(id EntityID) *T {
	i, ok := p.DenseIndex(id)
	if !ok {
		panic(fmt.Sprintf("teien: entity %s has no %s component", id, typeName[T]()))
	}
	return &p.components[i]
}

// TryGet returns id's component, or nil and false.
func (p *ComponentPool[T]) TryGet(id EntityID) (*T, bool) {
	i, ok := p.DenseIndex(id)
	if !ok {
		return nil, false
	}
	return &p.components[i], true
}

// At returns the component at dense position index. It is unchecked.
func (p *ComponentPool[T]) At(index int) *T {
	return &p.components[index]
}

// EntityID returns the entity owning the component at dense position index.
func (p *ComponentPool[T]) EntityID(index int) EntityID {
	return p.denseToEntity[index]
}

// EntityIDInt is EntityID as a plain integer.
func (p *ComponentPool[T]) EntityIDInt(index int) int {
	return p.denseToEntity[index].Int()
}

// Ref returns a handle to id's component. The handle is not checked; use
// Contains first when presence is not guaranteed.
func (p *ComponentPool[T]) Ref(id EntityID) Ref[T] {
	return Ref[T]{pool: p, id: id}
}

// ConstRef returns a read-only handle to id's component.
func (p *ComponentPool[T]) ConstRef(id EntityID) ConstRef[T] {
	return ConstRef[T]{pool: p, id: id}
}

// Len returns the number of components in the pool.
func (p *ComponentPool[T]) Len() int {
	return len(p.components)
}

// Components exposes the dense array. The slice is owned by the pool: it may
// be modified element-wise but must not be appended to, and it is invalidated
// by the next Add or Remove.
func (p *ComponentPool[T]) Components() []T {
	return p.components
}

// Entities exposes the dense-to-entity array, index-aligned with Components.
func (p *ComponentPool[T]) Entities() []EntityID {
	return p.denseToEntity
}

// All iterates the pool in dense order. Removing from the pool while ranging
// over it is not supported.
func (p *ComponentPool[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range p.components {
			if !yield(p.denseToEntity[i], &p.components[i]) {
				return
			}
		}
	}
}

// Clear removes every component, keeping allocated capacity.
func (p *ComponentPool[T]) Clear() {
	clear(p.components)
	p.components = p.components[:0]
	p.denseToEntity = p.denseToEntity[:0]
	for i := range p.entityToDense {
		p.entityToDense[i] = absent
	}
}

// Type returns the component type stored in the pool.
func (p *ComponentPool[T]) Type() reflect.Type {
	return componentTypeOf[T]()
}
