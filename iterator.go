package teien

import "iter"

// TraversalMode selects the order in which an Iterator visits a subtree.
type TraversalMode uint8

const (
	// DepthFirst visits a node, then each child's whole subtree in child
	// order.
	DepthFirst TraversalMode = iota
	// BreadthFirst visits the tree level by level.
	BreadthFirst
)

func (m TraversalMode) String() string {
	switch m {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	default:
		return "unknown"
	}
}

// Iterator walks the subtree rooted at one entity, root included. It is lazy:
// the children of a node are read from the scene when that node is visited.
// Removed entities are skipped. Creating entities under nodes that have not
// been visited yet is fine; removing entities during iteration is not
// supported.
//
//	it := scene.NewEntity("root").Entity().Iter(teien.DepthFirst)
//	for it.Next() {
//	    fmt.Println(it.Entity().Name())
//	}
type Iterator struct {
	root    RefEntity
	current RefEntity
	// pending holds ids still to visit: a stack in depth-first mode, a
	// queue in breadth-first mode.
	pending []EntityID
	head    int
	mode    TraversalMode
	done    bool
}

// NewIterator creates an iterator over the subtree rooted at root.
func NewIterator(root RefEntity, mode TraversalMode) *Iterator {
	it := &Iterator{root: root, mode: mode}
	it.Reset()
	return it
}

// Reset rewinds the iterator to before the root.
func (it *Iterator) Reset() {
	it.pending = it.pending[:0]
	it.head = 0
	it.done = false
	it.current = RefEntity{scene: it.root.scene, id: NoEntity}
	if it.root.Alive() {
		it.pending = append(it.pending, it.root.id)
	}
}

// Next advances to the next entity. It returns false once the subtree is
// exhausted.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	for {
		id, ok := it.pop()
		if !ok {
			it.done = true
			it.current = RefEntity{scene: it.root.scene, id: NoEntity}
			return false
		}
		e := it.root.scene.Entity(id)
		if e == nil {
			continue
		}
		it.push(e.children)
		it.current = e.Ref()
		return true
	}
}

func (it *Iterator) pop() (EntityID, bool) {
	if it.mode == BreadthFirst {
		if it.head >= len(it.pending) {
			return NoEntity, false
		}
		id := it.pending[it.head]
		it.head++
		return id, true
	}
	n := len(it.pending)
	if n == 0 {
		return NoEntity, false
	}
	id := it.pending[n-1]
	it.pending = it.pending[:n-1]
	return id, true
}

func (it *Iterator) push(children []EntityID) {
	if it.mode == BreadthFirst {
		if it.head == len(it.pending) {
			it.pending = it.pending[:0]
			it.head = 0
		}
		it.pending = append(it.pending, children...)
		return
	}
	// reversed so the first child is popped first
	for i := len(children) - 1; i >= 0; i-- {
		it.pending = append(it.pending, children[i])
	}
}

// Ref returns the current entity. Only meaningful after Next returned true.
func (it *Iterator) Ref() RefEntity {
	return it.current
}

// Entity resolves the current entity.
func (it *Iterator) Entity() *Entity {
	return it.current.Entity()
}

// Done reports whether the iterator is exhausted.
func (it *Iterator) Done() bool {
	return it.done
}

// All adapts the iterator to a range-over-func sequence, starting from the
// iterator's current position.
func (it *Iterator) All() iter.Seq[RefEntity] {
	return func(yield func(RefEntity) bool) {
		for it.Next() {
			if !yield(it.current) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *Iterator) Collect() []RefEntity {
	var refs []RefEntity
	for it.Next() {
		refs = append(refs, it.current)
	}
	return refs
}
