package teien

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Scene owns every entity of a game world and the component pools attached
// to them.
//
// Entities live in a single arena indexed by EntityID. Ids are issued in
// ascending order and never reused, so a dead entity keeps its slot. Every
// cross-reference between entities (parent, children, RefEntity) is an id
// resolved through the arena on access.
type Scene struct {
	id         uuid.UUID
	name       string
	entities   []Entity
	live       int
	components *ComponentMaps
	events     *EventBus
	logger     zerolog.Logger
}

// SceneOption configures a Scene at construction.
type SceneOption func(s *Scene)

// WithLogger sets the logger the scene reports lifecycle events to. Scenes
// are silent by default.
func WithLogger(logger zerolog.Logger) SceneOption {
	return func(s *Scene) {
		s.logger = logger
	}
}

// WithPrettyLog logs to stderr in human readable form.
func WithPrettyLog() SceneOption {
	return func(s *Scene) {
		s.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
}

// WithName names the scene in log output.
func WithName(name string) SceneOption {
	return func(s *Scene) {
		s.name = name
	}
}

// NewScene creates an empty scene with room for initialCapacity entities
// before the arena has to grow.
func NewScene(initialCapacity int, opts ...SceneOption) *Scene {
	s := &Scene{
		id:       uuid.New(),
		name:     "scene",
		entities: make([]Entity, 0, initialCapacity),
		events:   &EventBus{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().
		Str("scene_id", s.id.String()).
		Str("scene", s.name).
		Logger()
	s.components = newComponentMaps(&s.logger)
	return s
}

// ID returns the unique id of this scene instance.
func (s *Scene) ID() uuid.UUID {
	return s.id
}

// Name returns the name given with WithName, "scene" by default.
func (s *Scene) Name() string {
	return s.name
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *zerolog.Logger {
	return &s.logger
}

// ComponentMaps returns the scene's pool registry.
func (s *Scene) ComponentMaps() *ComponentMaps {
	return s.components
}

// Events returns the bus the scene publishes lifecycle events on.
func (s *Scene) Events() *EventBus {
	return s.events
}

// NewEntity creates a root entity.
func (s *Scene) NewEntity(name string) RefEntity {
	return s.newEntity(name, NoEntity)
}

// newEntity appends a new entity to the arena and links it under parent. It
// may reallocate the arena, so any *Entity held by the caller must be
// resolved again afterwards.
func (s *Scene) newEntity(name string, parent EntityID) RefEntity {
	id := EntityID(len(s.entities))
	s.entities = append(s.entities, Entity{
		scene:   s,
		id:      id,
		name:    name,
		parent:  parent,
		enabled: true,
		alive:   true,
	})
	s.live++
	if parent.Valid() {
		p := &s.entities[parent]
		p.children = append(p.children, id)
	}
	ref := RefEntity{scene: s, id: id}
	s.logger.Debug().
		Uint32("entity_id", uint32(id)).
		Str("entity_name", name).
		Str("parent_id", parent.String()).
		Msg("entity created")
	Publish(s.events, EntityCreated{Entity: ref, Parent: parent})
	return ref
}

// Entity resolves id. It returns nil if id was never issued or the entity has
// been removed. The pointer is valid until the next entity is created.
func (s *Scene) Entity(id EntityID) *Entity {
	if !id.Valid() || id.Int() >= len(s.entities) {
		return nil
	}
	e := &s.entities[id]
	if !e.alive {
		return nil
	}
	return e
}

// Ref returns a reference to id without checking that it is alive.
func (s *Scene) Ref(id EntityID) RefEntity {
	return RefEntity{scene: s, id: id}
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return s.live
}

// Cap returns the number of ids issued so far, live or dead.
func (s *Scene) Cap() int {
	return len(s.entities)
}

// Roots returns the live entities without a parent, in creation order.
func (s *Scene) Roots() []RefEntity {
	var roots []RefEntity
	for i := range s.entities {
		e := &s.entities[i]
		if e.alive && !e.parent.Valid() {
			roots = append(roots, e.Ref())
		}
	}
	return roots
}

// Clear removes every entity and empties every pool. Ids are not reused
// afterwards.
func (s *Scene) Clear() {
	for _, root := range s.Roots() {
		if e := root.Entity(); e != nil {
			e.Remove()
		}
	}
	s.components.Clear()
}

// destroy removes id and its whole subtree, children first. The caller has
// already unlinked id from its parent. The whole subtree is dead before the
// first event goes out, so handlers can neither reach it nor attach new
// children to it.
func (s *Scene) destroy(id EntityID) {
	doomed := s.subtree(id, nil)
	for _, d := range doomed {
		e := &s.entities[d]
		e.alive = false
		e.enabled = false
		e.parent = NoEntity
		e.children = nil
		s.live--
	}
	for _, d := range doomed {
		s.release(d)
	}
}

// subtree appends the ids of the subtree rooted at id to ids, children
// before their parent.
func (s *Scene) subtree(id EntityID, ids []EntityID) []EntityID {
	for _, child := range s.entities[id].children {
		ids = s.subtree(child, ids)
	}
	return append(ids, id)
}

// release drops the components of a dead entity and announces its removal.
// Handlers may grow the arena, so the entity is looked up by id only.
func (s *Scene) release(id EntityID) {
	name := s.entities[id].name
	removed := s.components.RemoveEntity(id)
	for _, t := range removed {
		Publish(s.events, ComponentRemoved{Entity: id, Type: t})
	}
	s.logger.Debug().
		Uint32("entity_id", uint32(id)).
		Str("entity_name", name).
		Int("components_removed", len(removed)).
		Msg("entity removed")
	Publish(s.events, EntityRemoved{ID: id, Name: name})
}
