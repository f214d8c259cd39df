package datastruct

import "iter"

// HashSetOf creates a HashSet from the received values, collapsing duplicates.
func HashSetOf[T comparable](vs ...T) *HashSet[T] {
	var set HashSet[T]
	for _, v := range vs {
		set.Add(v)
	}
	return &set
}

// HashSet is an unordered container of unique elements.
// It is an adaptor over HashMap where the element is the key
// and the value carries no payload.
//
// The zero value is an empty HashSet ready for use.
type HashSet[T comparable] struct {
	m HashMap[T, struct{}]
}

// Add puts the value into the set.
// It reports whether the value was newly added.
func (s *HashSet[T]) Add(v T) bool {
	if s.m.ContainsKey(v) {
		return false
	}
	s.m.Set(v, struct{}{})
	return true
}

// Has reports whether the value is part of the set.
func (s *HashSet[T]) Has(v T) bool {
	return s.m.ContainsKey(v)
}

// Delete removes the value from the set.
// It reports whether the value was present.
func (s *HashSet[T]) Delete(v T) bool {
	_, ok := s.m.Delete(v)
	return ok
}

// Len returns the number of elements in the set.
func (s *HashSet[T]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *HashSet[T]) IsEmpty() bool { return s.Len() == 0 }

// Iter yields the elements of the set. The order is not specified.
func (s *HashSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.m.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns the elements of the set. The order is not specified.
func (s *HashSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}

// Union returns a new set with the elements that are part of either set.
func (s *HashSet[T]) Union(oth *HashSet[T]) *HashSet[T] {
	var out HashSet[T]
	for v := range s.Iter() {
		out.Add(v)
	}
	for v := range oth.Iter() {
		out.Add(v)
	}
	return &out
}

// Intersect returns a new set with the elements that are part of both sets.
func (s *HashSet[T]) Intersect(oth *HashSet[T]) *HashSet[T] {
	var out HashSet[T]
	for v := range s.Iter() {
		if oth.Has(v) {
			out.Add(v)
		}
	}
	return &out
}

// Difference returns a new set with the elements that are part of this set but not the other.
func (s *HashSet[T]) Difference(oth *HashSet[T]) *HashSet[T] {
	var out HashSet[T]
	for v := range s.Iter() {
		if !oth.Has(v) {
			out.Add(v)
		}
	}
	return &out
}

// SymmetricDifference returns a new set with the elements that are part of exactly one of the sets.
func (s *HashSet[T]) SymmetricDifference(oth *HashSet[T]) *HashSet[T] {
	var out HashSet[T]
	for v := range s.Iter() {
		if !oth.Has(v) {
			out.Add(v)
		}
	}
	for v := range oth.Iter() {
		if !s.Has(v) {
			out.Add(v)
		}
	}
	return &out
}

// Equal reports whether the two sets contain exactly the same elements.
func (s *HashSet[T]) Equal(oth *HashSet[T]) bool {
	if s.Len() != oth.Len() {
		return false
	}
	for v := range s.Iter() {
		if !oth.Has(v) {
			return false
		}
	}
	return true
}
