package teien

import "github.com/rotisserie/eris"

// RefEntity refers to an entity without owning it: a scene plus an id,
// resolved through the scene's arena on every access. It is the form in which
// entities are held across frames.
type RefEntity struct {
	scene *Scene
	id    EntityID
}

// ID returns the referenced id.
func (r RefEntity) ID() EntityID {
	return r.id
}

// Scene returns the scene the reference resolves through.
func (r RefEntity) Scene() *Scene {
	return r.scene
}

// Valid reports whether the reference names an entity at all.
func (r RefEntity) Valid() bool {
	return r.scene != nil && r.id.Valid()
}

// Alive reports whether the referenced entity currently exists.
func (r RefEntity) Alive() bool {
	return r.Entity() != nil
}

// Entity resolves the reference, returning nil for dead entities.
func (r RefEntity) Entity() *Entity {
	if r.scene == nil {
		return nil
	}
	return r.scene.Entity(r.id)
}

// Resolve is Entity with an error for dead references.
func (r RefEntity) Resolve() (*Entity, error) {
	e := r.Entity()
	if e == nil {
		return nil, eris.Wrapf(ErrEntityNotAlive, "entity %s", r.id)
	}
	return e, nil
}
