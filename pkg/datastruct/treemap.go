package datastruct

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// treeDegree is the branching factor of the backing B-tree.
const treeDegree = 32

// NewTreeMap creates a TreeMap ordered by the standard go ordering of the key type.
func NewTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return NewTreeMapFunc[K, V](cmp.Compare[K])
}

// NewTreeMapFunc creates a TreeMap ordered by the received total order.
// The compare function must return a negative number when a < b,
// zero when equal and a positive number when a > b.
func NewTreeMapFunc[K, V any](compare func(a, b K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{
		cmp: compare,
		tree: btree.NewG(treeDegree, func(a, b treeEntry[K, V]) bool {
			return compare(a.key, b.key) < 0
		}),
	}
}

// TreeMap is an ordered associative container built on a balanced search tree.
//
// Iteration always yields the entries in strictly ascending key order,
// regardless of the insertion order, and every operation costs O(log n).
//
// The zero value of a TreeMap is not usable as it has no ordering,
// use NewTreeMap or NewTreeMapFunc.
type TreeMap[K, V any] struct {
	tree *btree.BTreeG[treeEntry[K, V]]
	cmp  func(a, b K) int
}

var _ KVS[string, any] = (*TreeMap[string, any])(nil)

type treeEntry[K, V any] struct {
	key   K
	value V
}

// Len returns the number of key value entries in the map.
func (m *TreeMap[K, V]) Len() int {
	return m.tree.Len()
}

// Set stores the value under the key,
// and returns the previous value together with a flag about whether there was one.
func (m *TreeMap[K, V]) Set(key K, val V) (V, bool) {
	prev, had := m.tree.ReplaceOrInsert(treeEntry[K, V]{key: key, value: val})
	return prev.value, had
}

// Lookup returns the value stored under the key together with an ok flag.
// It is the checked counterpart of Get.
func (m *TreeMap[K, V]) Lookup(key K) (V, bool) {
	e, ok := m.tree.Get(treeEntry[K, V]{key: key})
	return e.value, ok
}

// Get returns the value stored under the key,
// and panics with ErrKeyNotFound when the key is absent.
// Use Lookup when absence is an expected outcome.
func (m *TreeMap[K, V]) Get(key K) V {
	val, ok := m.Lookup(key)
	if !ok {
		panic(ErrKeyNotFound.F("%v", key))
	}
	return val
}

// ContainsKey reports whether the key has an entry in the map.
func (m *TreeMap[K, V]) ContainsKey(key K) bool {
	return m.tree.Has(treeEntry[K, V]{key: key})
}

// Delete removes the entry of the key,
// and returns the removed value together with a flag about whether there was one.
func (m *TreeMap[K, V]) Delete(key K) (V, bool) {
	e, ok := m.tree.Delete(treeEntry[K, V]{key: key})
	return e.value, ok
}

// Min returns the entry with the smallest key.
func (m *TreeMap[K, V]) Min() (K, V, bool) {
	e, ok := m.tree.Min()
	return e.key, e.value, ok
}

// Max returns the entry with the greatest key.
func (m *TreeMap[K, V]) Max() (K, V, bool) {
	e, ok := m.tree.Max()
	return e.key, e.value, ok
}

// Keys returns the keys in ascending order.
func (m *TreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.Iter() {
		keys = append(keys, k)
	}
	return keys
}

// Iter yields the entries in strictly ascending key order.
func (m *TreeMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(e treeEntry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// Range yields the entries whose keys fall within the requested bounds,
// in ascending key order. An Unbounded bound leaves that side open.
func (m *TreeMap[K, V]) Range(from, to Bound[K]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		visit := func(e treeEntry[K, V]) bool {
			if from.has {
				if c := m.cmp(e.key, from.key); c < 0 || (c == 0 && !from.inclusive) {
					return true // before the lower bound, keep ascending
				}
			}
			if to.has {
				if c := m.cmp(e.key, to.key); 0 < c || (c == 0 && !to.inclusive) {
					return false // past the upper bound, stop the walk
				}
			}
			return yield(e.key, e.value)
		}
		if from.has {
			m.tree.AscendGreaterOrEqual(treeEntry[K, V]{key: from.key}, visit)
		} else {
			m.tree.Ascend(visit)
		}
	}
}

// Bound describes one side of a Range query.
type Bound[K any] struct {
	key       K
	has       bool
	inclusive bool
}

// Incl makes a bound that includes the boundary key itself.
func Incl[K any](key K) Bound[K] {
	return Bound[K]{key: key, has: true, inclusive: true}
}

// Excl makes a bound that excludes the boundary key itself.
func Excl[K any](key K) Bound[K] {
	return Bound[K]{key: key, has: true}
}

// Unbounded makes a bound that leaves its side of the range open.
func Unbounded[K any]() Bound[K] {
	return Bound[K]{}
}
