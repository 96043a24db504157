package teien

import (
	"math"
	"strconv"
)

// EntityID is the opaque handle of an entity in a Scene. Its numeric value is
// used directly as an index into the scene arena and into every pool's sparse
// array.
type EntityID uint32

// NoEntity is the reserved "none" value. It is never issued by a Scene.
const NoEntity EntityID = math.MaxUint32

// Valid reports whether id refers to an entity, i.e. is not NoEntity.
func (id EntityID) Valid() bool {
	return id != NoEntity
}

// Int returns the numeric value of id as an index.
func (id EntityID) Int() int {
	return int(id)
}

func (id EntityID) String() string {
	if id == NoEntity {
		return "none"
	}
	return strconv.FormatUint(uint64(id), 10)
}
