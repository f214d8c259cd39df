package datastruct

import (
	"cmp"
	"iter"
)

// TreeSetOf creates a TreeSet from the received values, collapsing duplicates.
func TreeSetOf[T cmp.Ordered](vs ...T) *TreeSet[T] {
	set := NewTreeSet[T]()
	for _, v := range vs {
		set.Add(v)
	}
	return set
}

// NewTreeSet creates a TreeSet ordered by the standard go ordering of the element type.
func NewTreeSet[T cmp.Ordered]() *TreeSet[T] {
	return NewTreeSetFunc[T](cmp.Compare[T])
}

// NewTreeSetFunc creates a TreeSet ordered by the received total order.
func NewTreeSetFunc[T any](compare func(a, b T) int) *TreeSet[T] {
	return &TreeSet[T]{m: NewTreeMapFunc[T, struct{}](compare)}
}

// TreeSet is an ordered container of unique elements,
// an adaptor over TreeMap where the element is the key.
//
// Iteration always yields the elements in strictly ascending order,
// regardless of the insertion order.
//
// The zero value of a TreeSet is not usable as it has no ordering,
// use NewTreeSet, NewTreeSetFunc or TreeSetOf.
type TreeSet[T any] struct {
	m *TreeMap[T, struct{}]
}

// Add puts the value into the set.
// It reports whether the value was newly added.
func (s *TreeSet[T]) Add(v T) bool {
	_, had := s.m.Set(v, struct{}{})
	return !had
}

// Has reports whether the value is part of the set.
func (s *TreeSet[T]) Has(v T) bool {
	return s.m.ContainsKey(v)
}

// Delete removes the value from the set.
// It reports whether the value was present.
func (s *TreeSet[T]) Delete(v T) bool {
	_, ok := s.m.Delete(v)
	return ok
}

// Len returns the number of elements in the set.
func (s *TreeSet[T]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *TreeSet[T]) IsEmpty() bool { return s.Len() == 0 }

// Min returns the smallest element of the set.
func (s *TreeSet[T]) Min() (T, bool) {
	k, _, ok := s.m.Min()
	return k, ok
}

// Max returns the greatest element of the set.
func (s *TreeSet[T]) Max() (T, bool) {
	k, _, ok := s.m.Max()
	return k, ok
}

// Iter yields the elements in strictly ascending order.
func (s *TreeSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.m.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range yields the elements that fall within the requested bounds, in ascending order.
func (s *TreeSet[T]) Range(from, to Bound[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.m.Range(from, to) {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns the elements in ascending order.
func (s *TreeSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}
