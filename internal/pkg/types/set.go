package types

// Set is a hash set of comparable values. The zero value is a usable empty
// set for reads; use NewSet before adding.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding values.
func NewSet[T comparable](values ...T) Set[T] {
	set := make(Set[T], len(values))
	set.Add(values...)
	return set
}

// Add inserts values in place.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Has reports whether value is in the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}
