package teien

// Builder spawns entities that start with a component of type T.
type Builder[T any] struct {
	scene *Scene
}

// NewBuilder creates a builder for T, creating the pool for T if needed.
func NewBuilder[T any](s *Scene) *Builder[T] {
	EnsurePool[T](s.components)
	return &Builder[T]{scene: s}
}

// NewEntity creates a root entity holding v.
func (b *Builder[T]) NewEntity(name string, v T) RefEntity {
	ref := b.scene.NewEntity(name)
	AddComponent(ref.Entity(), v)
	return ref
}

// NewChild creates a child of parent holding v.
func (b *Builder[T]) NewChild(parent RefEntity, name string, v T) (RefEntity, error) {
	p, err := parent.Resolve()
	if err != nil {
		return RefEntity{id: NoEntity}, err
	}
	ref := p.EmplaceBack(name)
	AddComponent(ref.Entity(), v)
	return ref, nil
}

// NewChildren creates one child of parent per name, each holding a copy of v.
func (b *Builder[T]) NewChildren(parent RefEntity, v T, names ...string) ([]RefEntity, error) {
	refs := make([]RefEntity, 0, len(names))
	for _, name := range names {
		ref, err := b.NewChild(parent, name, v)
		if err != nil {
			return refs, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
