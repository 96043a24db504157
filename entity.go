package teien

import (
	"slices"

	"github.com/rotisserie/eris"
)

// Entity is a node of the scene tree.
//
// An entity is either alive or removed, and independently enabled or
// disabled. Removal is terminal. Parent and children are stored as ids and
// always kept consistent on both sides: an entity appears in exactly one
// parent's child list, the one its parent id names.
//
// *Entity values come from the scene arena and are only valid until the next
// entity is created. Hold a RefEntity instead when the entity must be reached
// later.
type Entity struct {
	scene    *Scene
	name     string
	children []EntityID
	layer    LayerMask
	id       EntityID
	parent   EntityID
	enabled  bool
	alive    bool
}

// ID returns the entity's id.
func (e *Entity) ID() EntityID {
	return e.id
}

// Ref returns a non-owning reference to the entity.
func (e *Entity) Ref() RefEntity {
	return RefEntity{scene: e.scene, id: e.id}
}

// Scene returns the scene the entity belongs to.
func (e *Entity) Scene() *Scene {
	return e.scene
}

// Name returns the entity's name. Names need not be unique.
func (e *Entity) Name() string {
	return e.name
}

// SetName renames the entity.
func (e *Entity) SetName(name string) {
	e.name = name
}

// Alive reports whether the entity has not been removed.
func (e *Entity) Alive() bool {
	return e.alive
}

// Enabled reports whether the entity is active.
func (e *Entity) Enabled() bool {
	return e.enabled
}

// Enable activates the entity and its whole subtree.
func (e *Entity) Enable() {
	e.SetEnabled(true, true)
}

// Disable deactivates the entity and its whole subtree.
func (e *Entity) Disable() {
	e.SetEnabled(false, true)
}

// SetEnabled changes the activity state of the entity, and of its subtree when
// recursive is set. Without recursion children keep their own state.
func (e *Entity) SetEnabled(enabled, recursive bool) {
	if !e.alive {
		return
	}
	e.enabled = enabled
	if !recursive {
		return
	}
	for _, id := range e.children {
		if child := e.scene.Entity(id); child != nil {
			child.SetEnabled(enabled, true)
		}
	}
}

// Layer returns the collision/render layers of the entity.
func (e *Entity) Layer() LayerMask {
	return e.layer
}

// SetLayer replaces the entity's layers with m.
func (e *Entity) SetLayer(m LayerMask) {
	e.layer = m
}

// AddLayer puts the entity on layer bit.
func (e *Entity) AddLayer(bit uint8) {
	e.layer.Set(bit)
}

// RemoveLayer takes the entity off layer bit.
func (e *Entity) RemoveLayer(bit uint8) {
	e.layer.Unset(bit)
}

// InLayer reports whether the entity is on layer bit.
func (e *Entity) InLayer(bit uint8) bool {
	return e.layer.Has(bit)
}

// EmplaceBack creates a child named name at the end of the child list. e must
// not be used after the call; resolve it again through its RefEntity. On a
// removed entity it does nothing and returns an invalid reference.
func (e *Entity) EmplaceBack(name string) RefEntity {
	if !e.alive {
		return RefEntity{id: NoEntity}
	}
	return e.scene.newEntity(name, e.id)
}

// Parent returns the entity's parent, or false for a root.
func (e *Entity) Parent() (RefEntity, bool) {
	if !e.parent.Valid() {
		return RefEntity{scene: e.scene, id: NoEntity}, false
	}
	return RefEntity{scene: e.scene, id: e.parent}, true
}

// SetParent moves the entity under newParent, appending it to newParent's
// children. Passing the current parent moves the entity to the end of the
// child list. newParent must be alive, in the same scene, and not e itself
// or one of its descendants.
func (e *Entity) SetParent(newParent RefEntity) error {
	if !e.alive {
		return eris.Wrapf(ErrEntityNotAlive, "entity %s", e.id)
	}
	p, err := newParent.Resolve()
	if err != nil {
		return eris.Wrapf(err, "reparent entity %s", e.id)
	}
	if p.scene != e.scene {
		return eris.Wrapf(ErrSceneMismatch, "entity %s in %s under %s in %s", e.id, e.scene.name, p.id, p.scene.name)
	}
	for anc := p; anc != nil; anc = e.scene.Entity(anc.parent) {
		if anc.id == e.id {
			return eris.Wrapf(ErrParentCycle, "entity %s under %s", e.id, p.id)
		}
	}
	old := e.parent
	e.unlink()
	e.parent = p.id
	p.children = append(p.children, e.id)
	e.scene.logger.Debug().
		Uint32("entity_id", uint32(e.id)).
		Str("old_parent_id", old.String()).
		Uint32("parent_id", uint32(p.id)).
		Msg("entity reparented")
	Publish(e.scene.events, EntityReparented{Entity: e.Ref(), OldParent: old, NewParent: p.id})
	return nil
}

// Detach makes the entity a root.
func (e *Entity) Detach() {
	if !e.alive || !e.parent.Valid() {
		return
	}
	old := e.parent
	e.unlink()
	Publish(e.scene.events, EntityReparented{Entity: e.Ref(), OldParent: old, NewParent: NoEntity})
}

// RemoveChild detaches child from e, making it a root. It reports false if
// child is not a child of e. The child is not destroyed.
func (e *Entity) RemoveChild(child RefEntity) bool {
	c := child.Entity()
	if c == nil || c.parent != e.id || c.scene != e.scene {
		return false
	}
	c.Detach()
	return true
}

// unlink removes e from its parent's child list and clears the back
// reference.
func (e *Entity) unlink() {
	if p := e.scene.Entity(e.parent); p != nil {
		if i := slices.Index(p.children, e.id); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	e.parent = NoEntity
}

// Children returns references to the direct children in order.
func (e *Entity) Children() []RefEntity {
	refs := make([]RefEntity, len(e.children))
	for i, id := range e.children {
		refs[i] = RefEntity{scene: e.scene, id: id}
	}
	return refs
}

// ChildCount returns the number of direct children.
func (e *Entity) ChildCount() int {
	return len(e.children)
}

// Child returns the i-th child.
func (e *Entity) Child(i int) RefEntity {
	return RefEntity{scene: e.scene, id: e.children[i]}
}

// Find searches the subtree below e, depth-first, for an entity named name.
func (e *Entity) Find(name string) (RefEntity, bool) {
	for _, id := range e.children {
		child := e.scene.Entity(id)
		if child == nil {
			continue
		}
		if child.name == name {
			return child.Ref(), true
		}
		if found, ok := child.Find(name); ok {
			return found, true
		}
	}
	return RefEntity{scene: e.scene, id: NoEntity}, false
}

// Depth returns start plus the number of ancestors of e. Depth(0) is 0 for a
// root.
func (e *Entity) Depth(start int) int {
	p := e.scene.Entity(e.parent)
	if p == nil {
		return start
	}
	return p.Depth(start + 1)
}

// Remove detaches the entity from its parent and destroys it together with
// its subtree and every component they own. Removing a removed entity does
// nothing.
func (e *Entity) Remove() {
	if !e.alive {
		return
	}
	e.unlink()
	e.scene.destroy(e.id)
}

// Iter returns an iterator over the subtree rooted at e, e included.
func (e *Entity) Iter(mode TraversalMode) *Iterator {
	return NewIterator(e.Ref(), mode)
}
