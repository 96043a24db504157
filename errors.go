package teien

import "github.com/rotisserie/eris"

var (
	// ErrPoolNotFound is returned when no entity has ever been given a
	// component of the requested type.
	ErrPoolNotFound = eris.New("component pool not found")
	// ErrComponentNotFound is returned when the entity has no component of
	// the requested type.
	ErrComponentNotFound = eris.New("component not on entity")
	// ErrEntityNotAlive is returned when resolving a reference to an entity
	// that was removed or never existed.
	ErrEntityNotAlive = eris.New("entity is not alive")
	// ErrParentCycle is returned when an entity would become its own
	// ancestor.
	ErrParentCycle = eris.New("entity cannot be parented to itself or a descendant")
	// ErrSceneMismatch is returned when linking entities that live in
	// different scenes.
	ErrSceneMismatch = eris.New("entities belong to different scenes")
)
