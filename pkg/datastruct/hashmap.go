package datastruct

import (
	"hash/maphash"
	"iter"
)

// NewHashMap creates a HashMap with an element store prepared for the given capacity.
func NewHashMap[K comparable, V any](capacity int) *HashMap[K, V] {
	var m HashMap[K, V]
	if 0 < capacity {
		m.buckets = make([]*hmEntry[K, V], bucketCountFor(capacity))
	}
	return &m
}

// NewHashMapFunc creates a HashMap that distributes its keys with the received hash function
// instead of the default maphash based hashing. Key equality remains the == of the key type.
func NewHashMapFunc[K comparable, V any](hash func(K) uint64) *HashMap[K, V] {
	return &HashMap[K, V]{hash: hash}
}

// HashMap is an unordered associative container built on a bucket array,
// where colliding keys are resolved by chaining.
//
// Each key maps to at most one value. When the entry count would exceed
// 3/4 of the bucket capacity, every entry is rehashed into a bucket array
// of double the size, which keeps the operations amortised O(1) with an
// O(n) hiccup at the resize points.
//
// The iteration order is an implementation artifact, never a guarantee.
//
// The zero value is an empty HashMap ready for use.
type HashMap[K comparable, V any] struct {
	buckets []*hmEntry[K, V]
	length  int
	hash    func(K) uint64
}

var _ KVS[any, any] = (*HashMap[any, any])(nil)

type hmEntry[K comparable, V any] struct {
	key   K
	value V
	next  *hmEntry[K, V]
}

const minBucketCount = 8

// bucketCountFor returns the smallest power of two bucket count
// that keeps the load factor below the resize threshold for n entries.
func bucketCountFor(n int) int {
	c := minBucketCount
	for n > c*3/4 {
		c *= 2
	}
	return c
}

func (m *HashMap[K, V]) init() {
	if m.buckets == nil {
		m.buckets = make([]*hmEntry[K, V], minBucketCount)
	}
	if m.hash == nil {
		seed := maphash.MakeSeed()
		m.hash = func(k K) uint64 { return maphash.Comparable(seed, k) }
	}
}

func (m *HashMap[K, V]) bucketIndex(key K) int {
	return int(m.hash(key) & uint64(len(m.buckets)-1))
}

func (m *HashMap[K, V]) lookupEntry(key K) *hmEntry[K, V] {
	if m.buckets == nil || m.hash == nil {
		return nil
	}
	for e := m.buckets[m.bucketIndex(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// maybeGrow rehashes every entry into a doubled bucket array
// once the load factor threshold would be crossed by one more entry.
func (m *HashMap[K, V]) maybeGrow() {
	if m.length+1 <= len(m.buckets)*3/4 {
		return
	}
	buckets := make([]*hmEntry[K, V], len(m.buckets)*2)
	for _, e := range m.buckets {
		for e != nil {
			next := e.next
			i := int(m.hash(e.key) & uint64(len(buckets)-1))
			e.next = buckets[i]
			buckets[i] = e
			e = next
		}
	}
	m.buckets = buckets
}

// Len returns the number of key value entries in the map.
func (m *HashMap[K, V]) Len() int {
	return m.length
}

// Set stores the value under the key,
// and returns the previous value together with a flag about whether there was one.
func (m *HashMap[K, V]) Set(key K, val V) (V, bool) {
	m.init()
	if e := m.lookupEntry(key); e != nil {
		prev := e.value
		e.value = val
		return prev, true
	}
	m.maybeGrow()
	i := m.bucketIndex(key)
	m.buckets[i] = &hmEntry[K, V]{key: key, value: val, next: m.buckets[i]}
	m.length++
	var zero V
	return zero, false
}

// Lookup returns the value stored under the key together with an ok flag.
// It is the checked counterpart of Get.
func (m *HashMap[K, V]) Lookup(key K) (V, bool) {
	if e := m.lookupEntry(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Get returns the value stored under the key,
// and panics with ErrKeyNotFound when the key is absent.
// Use Lookup when absence is an expected outcome.
func (m *HashMap[K, V]) Get(key K) V {
	val, ok := m.Lookup(key)
	if !ok {
		panic(ErrKeyNotFound.F("%v", key))
	}
	return val
}

// ContainsKey reports whether the key has an entry in the map.
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	return m.lookupEntry(key) != nil
}

// Delete removes the entry of the key,
// and returns the removed value together with a flag about whether there was one.
func (m *HashMap[K, V]) Delete(key K) (V, bool) {
	var zero V
	if m.buckets == nil || m.hash == nil {
		return zero, false
	}
	i := m.bucketIndex(key)
	for ptr := &m.buckets[i]; *ptr != nil; ptr = &(*ptr).next {
		if e := *ptr; e.key == key {
			*ptr = e.next
			m.length--
			return e.value, true
		}
	}
	return zero, false
}

// GetOrInit returns a mutable handle to the value stored under the key.
// When the key is absent, the entry is first initialised with the result
// of the init function, or with the zero value when init is nil.
//
// Lookup and insert happen as a single structural operation,
// which makes it the building block for accumulation patterns:
//
//	*counts.GetOrInit(word, nil)++
//
// The returned handle stays valid until the next structural mutation of the map.
func (m *HashMap[K, V]) GetOrInit(key K, init func() V) *V {
	m.init()
	if e := m.lookupEntry(key); e != nil {
		return &e.value
	}
	m.maybeGrow()
	e := &hmEntry[K, V]{key: key}
	if init != nil {
		e.value = init()
	}
	i := m.bucketIndex(key)
	e.next = m.buckets[i]
	m.buckets[i] = e
	m.length++
	return &e.value
}

// Keys returns the keys of the map. The order is not specified.
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.Iter() {
		keys = append(keys, k)
	}
	return keys
}

// ToMap copies the entries into a native go map.
func (m *HashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}

// Iter yields the key value entries. The order is not specified,
// callers must not depend on it.
func (m *HashMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
