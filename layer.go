package teien

// LayerMask is the set of collision/render layers an entity belongs to. Up to
// 256 layers are addressable; each bit is one layer.
type LayerMask [4]uint64

// Layers builds a mask with the given layer bits set.
func Layers(bits ...uint8) LayerMask {
	var m LayerMask
	for _, b := range bits {
		m.Set(b)
	}
	return m
}

// layerWord locates bit: the word holding it and its mask within that word.
func layerWord(bit uint8) (int, uint64) {
	return int(bit >> 6), 1 << (bit & 63)
}

// Set adds layer bit to the mask.
func (m *LayerMask) Set(bit uint8) {
	w, b := layerWord(bit)
	m[w] |= b
}

// Unset removes layer bit from the mask.
func (m *LayerMask) Unset(bit uint8) {
	w, b := layerWord(bit)
	m[w] &^= b
}

// Has reports whether layer bit is set.
func (m LayerMask) Has(bit uint8) bool {
	w, b := layerWord(bit)
	return m[w]&b != 0
}

// Contains reports whether every layer in sub is also in m.
func (m LayerMask) Contains(sub LayerMask) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// Intersects reports whether m and other share at least one layer.
func (m LayerMask) Intersects(other LayerMask) bool {
	return (m[0]&other[0] != 0) ||
		(m[1]&other[1] != 0) ||
		(m[2]&other[2] != 0) ||
		(m[3]&other[3] != 0)
}

// IsZero reports whether no layer is set.
func (m LayerMask) IsZero() bool {
	return m == LayerMask{}
}
