package datastruct

import "iter"

// NewDeque creates a Deque with an element store prepared for the given capacity.
func NewDeque[T any](capacity int) *Deque[T] {
	var d Deque[T]
	if 0 < capacity {
		d.setup(ceilPow2(uint(capacity)))
	}
	return &d
}

// Deque is a double ended queue with amortised O(1) insertion and removal at both ends.
//
// It is backed by a ring buffer whose length is always a power of two,
// so the head and tail positions wrap with a bit mask. The ring buffer
// backing is a deliberate design choice: it also gives O(1) random access
// through Lookup and Get, with index 0 being the current front.
//
// The zero value is an empty Deque ready for use.
type Deque[T any] struct {
	buf []T
	// head and tail are free running positions, tail-head is the length,
	// and both wrap into the buffer through the mask.
	head, tail, mask uint
}

const minDequeCapacity = 8

func ceilPow2(n uint) uint {
	c := uint(1)
	for c < n {
		c <<= 1
	}
	return c
}

func (d *Deque[T]) setup(capacity uint) {
	if capacity < minDequeCapacity {
		capacity = minDequeCapacity
	}
	d.buf = make([]T, capacity)
	d.mask = capacity - 1
	d.head, d.tail = 0, 0
}

// resize moves the elements into a ring buffer that can hold at least need elements.
func (d *Deque[T]) resize(need uint) {
	capacity := ceilPow2(need)
	if capacity < minDequeCapacity {
		capacity = minDequeCapacity
	}
	buf := make([]T, capacity)
	length := d.tail - d.head
	for i := uint(0); i < length; i++ {
		buf[i] = d.buf[(d.head+i)&d.mask]
	}
	d.buf = buf
	d.mask = capacity - 1
	d.head, d.tail = 0, length
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return int(d.tail - d.head)
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool { return d.Len() == 0 }

// PushBack appends the values at the back of the deque.
// The last argument becomes the new back.
func (d *Deque[T]) PushBack(vs ...T) {
	if len(vs) == 0 {
		return
	}
	d.ensure(uint(len(vs)))
	for _, v := range vs {
		d.buf[d.tail&d.mask] = v
		d.tail++
	}
}

// PushFront places the values at the front of the deque.
// The first argument becomes the new front.
func (d *Deque[T]) PushFront(vs ...T) {
	if len(vs) == 0 {
		return
	}
	d.ensure(uint(len(vs)))
	for i := len(vs) - 1; 0 <= i; i-- {
		d.head--
		d.buf[d.head&d.mask] = vs[i]
	}
}

func (d *Deque[T]) ensure(n uint) {
	if d.buf == nil {
		d.setup(ceilPow2(n))
		return
	}
	if uint(d.Len())+n > uint(len(d.buf)) {
		d.resize(uint(d.Len()) + n)
	}
}

// PopFront removes and returns the front element. Returns false when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}
	v := d.buf[d.head&d.mask]
	d.buf[d.head&d.mask] = zero // release the element reference
	d.head++
	return v, true
}

// PopBack removes and returns the back element. Returns false when the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}
	d.tail--
	v := d.buf[d.tail&d.mask]
	d.buf[d.tail&d.mask] = zero // release the element reference
	return v, true
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	return d.Lookup(0)
}

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	return d.Lookup(d.Len() - 1)
}

// Lookup returns the element at the index counted from the front,
// together with an ok flag. It is the checked counterpart of Get.
func (d *Deque[T]) Lookup(index int) (T, bool) {
	if index < 0 || d.Len() <= index {
		var zero T
		return zero, false
	}
	return d.buf[(d.head+uint(index))&d.mask], true
}

// Get returns the element at the index counted from the front,
// and panics with ErrIndexOutOfBounds when the index is invalid.
// Use Lookup when absence is an expected outcome.
func (d *Deque[T]) Get(index int) T {
	v, ok := d.Lookup(index)
	if !ok {
		panic(ErrIndexOutOfBounds.F("index %d is out of range [0:%d)", index, d.Len()))
	}
	return v
}

// Clear drops every element while retaining the already allocated ring buffer.
func (d *Deque[T]) Clear() {
	var zero T
	for i := d.head; i != d.tail; i++ {
		d.buf[i&d.mask] = zero
	}
	d.head, d.tail = 0, 0
}

// Iter yields the elements from front to back.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.head; i != d.tail; i++ {
			if !yield(d.buf[i&d.mask]) {
				return
			}
		}
	}
}

// ToSlice returns the elements from front to back.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, 0, d.Len())
	for v := range d.Iter() {
		out = append(out, v)
	}
	return out
}
