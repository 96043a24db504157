package teien

import (
	"github.com/rs/zerolog"
)

func loadPoolIntoArrayLogger(p componentStore, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Str("component_name", p.Type().String())
	dictLogger = dictLogger.Int("size", p.Len())
	return arrayLogger.Dict(dictLogger)
}

func loadPoolsToEvent(zeroLoggerEvent *zerolog.Event, cm *ComponentMaps) *zerolog.Event {
	zeroLoggerEvent.Int("total_pools", len(cm.pools))
	arrayLogger := zerolog.Arr()
	for _, p := range cm.pools {
		arrayLogger = loadPoolIntoArrayLogger(p, arrayLogger)
	}
	return zeroLoggerEvent.Array("pools", arrayLogger)
}

func loadEntityIntoEvent(zeroLoggerEvent *zerolog.Event, e *Entity) *zerolog.Event {
	zeroLoggerEvent.Uint32("entity_id", uint32(e.id))
	zeroLoggerEvent.Str("entity_name", e.name)
	zeroLoggerEvent.Str("parent_id", e.parent.String())
	zeroLoggerEvent.Int("depth", e.Depth(0))
	zeroLoggerEvent.Bool("enabled", e.enabled)
	children := zerolog.Arr()
	for _, id := range e.children {
		children = children.Uint32(uint32(id))
	}
	zeroLoggerEvent.Array("children", children)
	components := zerolog.Arr()
	for _, t := range e.Components() {
		components = components.Str(t.String())
	}
	return zeroLoggerEvent.Array("components", components)
}

// LogScene logs the entity counts and the size of every pool of s.
func LogScene(logger *zerolog.Logger, s *Scene, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent.Int("total_entities", s.Len())
	zeroLoggerEvent.Int("issued_ids", s.Cap())
	zeroLoggerEvent.Int("total_roots", len(s.Roots()))
	loadPoolsToEvent(zeroLoggerEvent, s.components).Send()
}

// LogEntity logs e's place in the tree and its component types.
func LogEntity(logger *zerolog.Logger, level zerolog.Level, e *Entity) {
	loadEntityIntoEvent(logger.WithLevel(level), e).Send()
}

// LogTree logs every entity of the subtree rooted at root, depth-first.
func LogTree(logger *zerolog.Logger, level zerolog.Level, root RefEntity) {
	it := NewIterator(root, DepthFirst)
	for it.Next() {
		LogEntity(logger, level, it.Entity())
	}
}
