package teien

// growFilled extends s to length n, setting every new slot to fill. Capacity
// at least doubles so that ids issued in ascending order grow amortized.
func growFilled[T any](s []T, n int, fill T) []T {
	old := len(s)
	if n <= old {
		return s
	}
	if cap(s) < n {
		ns := make([]T, old, max(2*cap(s), n))
		copy(ns, s)
		s = ns
	}
	s = s[:n]
	for i := old; i < n; i++ {
		s[i] = fill
	}
	return s
}

// typeName returns a short printable name for a component type.
func typeName[T any]() string {
	return componentTypeOf[T]().String()
}
