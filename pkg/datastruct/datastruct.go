// Package datastruct provides generic in-memory container types.
//
// The containers own their elements exclusively and carry no internal
// synchronisation: they are single goroutine use abstractions.
// Sharing one across goroutines requires the caller to impose
// a single-writer-or-multiple-readers discipline.
//
// Accessors come in pairs on purpose:
// Lookup is the checked contract that reports absence with an ok flag,
// while Get is the fail-fast contract that panics on an invalid access.
package datastruct

import "iter"

// Sizer is implemented by containers that can tell their current element count.
type Sizer interface {
	Len() int
}

// List is the common surface of the ordered containers.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

// Sequence is an index addressable, order preserving, growable container.
type Sequence[T any] interface {
	List[T]
	Lookup(index int) (T, bool)
	Set(index int, val T) bool
	Insert(index int, vs ...T) bool
	Delete(index int) bool
}

// KVS stands for Key Value Store, the common surface of the associative containers.
type KVS[K, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	Set(key K, val V) (V, bool)
	Delete(key K) (V, bool)
	ContainsKey(key K) bool
	Keys() []K
	Iter() iter.Seq2[K, V]
	Sizer
}
