package datastruct

import "iter"

// VectorOf creates a Vector from the received values.
func VectorOf[T any](vs ...T) *Vector[T] {
	var vec Vector[T]
	vec.Append(vs...)
	return &vec
}

// Vector is an index addressable, order preserving, growable container.
//
// It owns a contiguous element store where the [0, Len) range is valid and
// initialised. When an append would exceed the store's capacity, the store
// is reallocated to at least double the previous capacity and the elements
// move over to the new allocation, which makes Append amortised O(1).
//
// The zero value is an empty Vector ready for use.
type Vector[T any] struct {
	// buf is the element store, its length is the vector's capacity.
	buf    []T
	length int
}

var _ Sequence[any] = (*Vector[any])(nil)

const minVectorCapacity = 4

// grow reallocates the element store so that it can hold at least need elements.
func (v *Vector[T]) grow(need int) {
	capacity := len(v.buf) * 2
	if capacity < minVectorCapacity {
		capacity = minVectorCapacity
	}
	for capacity < need {
		capacity *= 2
	}
	buf := make([]T, capacity)
	copy(buf, v.buf[:v.length])
	v.buf = buf
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the current capacity of the element store.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool { return v.Len() == 0 }

// Append adds the values to the end of the vector.
func (v *Vector[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	if need := v.length + len(vs); len(v.buf) < need {
		v.grow(need)
	}
	copy(v.buf[v.length:], vs)
	v.length += len(vs)
}

// Pop removes and returns the last element. Returns false when the vector is empty.
func (v *Vector[T]) Pop() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	index := v.length - 1
	val := v.buf[index]
	var zero T
	v.buf[index] = zero // release the element reference
	v.length = index
	return val, true
}

// Lookup returns the element at the index together with an ok flag.
// It is the checked counterpart of Get.
func (v *Vector[T]) Lookup(index int) (T, bool) {
	if index < 0 || v.length <= index {
		var zero T
		return zero, false
	}
	return v.buf[index], true
}

// Get returns the element at the index,
// and panics with ErrIndexOutOfBounds when the index is invalid.
// Use Lookup when absence is an expected outcome.
func (v *Vector[T]) Get(index int) T {
	val, ok := v.Lookup(index)
	if !ok {
		panic(ErrIndexOutOfBounds.F("index %d is out of range [0:%d)", index, v.Len()))
	}
	return val
}

// Set replaces the element at the index. Returns false when the index is invalid.
func (v *Vector[T]) Set(index int, val T) bool {
	if index < 0 || v.length <= index {
		return false
	}
	v.buf[index] = val
	return true
}

// Insert places the values at the index, shifting the trailing elements right.
// Inserting at Len() is equivalent to Append. Returns false when the index is invalid.
func (v *Vector[T]) Insert(index int, vs ...T) bool {
	if index < 0 || v.length < index {
		return false
	}
	if len(vs) == 0 {
		return true
	}
	if need := v.length + len(vs); len(v.buf) < need {
		v.grow(need)
	}
	copy(v.buf[index+len(vs):], v.buf[index:v.length])
	copy(v.buf[index:], vs)
	v.length += len(vs)
	return true
}

// Delete removes the element at the index, shifting the trailing elements left.
// The cost is proportional to the number of trailing elements.
// Returns false when the index is invalid.
func (v *Vector[T]) Delete(index int) bool {
	if index < 0 || v.length <= index {
		return false
	}
	copy(v.buf[index:], v.buf[index+1:v.length])
	var zero T
	v.buf[v.length-1] = zero // release the element reference
	v.length--
	return true
}

// Clear drops every element while retaining the already allocated element store.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.length; i++ {
		v.buf[i] = zero
	}
	v.length = 0
}

// ToSlice returns a copy of the vector's elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.length)
	copy(out, v.buf[:v.length])
	return out
}

// Iter yields the elements in index order.
func (v *Vector[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Contains reports whether the vector has an element equal to the value.
// It is a linear scan using the == equality of the element type.
func Contains[T comparable](vec *Vector[T], val T) bool {
	for v := range vec.Iter() {
		if v == val {
			return true
		}
	}
	return false
}
