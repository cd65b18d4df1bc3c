// Package deque provides a generic double-ended queue with a fixed
// maximum length. Once the deque is full, pushing to either end evicts
// and returns the element at the opposite end, giving sliding-window
// semantics without manual bookkeeping.
package deque

import (
	"github.com/huynhanx03/go-deque/pkg/utils"
)

// Deque is a bounded double-ended queue backed by a power-of-two ring
// buffer. Index 0 is the front (oldest element), index Len()-1 is the
// back. After every operation Len() <= MaxLen() holds.
//
// The zero value is not usable; construct with New or FromSlice.
// Deque is NOT thread-safe.
type Deque[T any] struct {
	buf    []T // power-of-two ring; nil until first insert
	head   int // index of the front element
	size   int // number of live elements
	maxLen int // maximum number of elements, >= 1
}

// New creates an empty deque with the given maximum length.
// It panics if maxLen < 1.
func New[T any](maxLen int) *Deque[T] {
	if maxLen < 1 {
		panic("deque: maxlen must be >= 1")
	}
	return &Deque[T]{maxLen: maxLen}
}

// FromSlice creates a deque holding a copy of items. If items is longer
// than maxLen, only the last maxLen elements are kept, in their original
// relative order, as if the extra front elements had already been
// evicted. The input slice is not retained.
// It panics if maxLen < 1.
func FromSlice[T any](items []T, maxLen int) *Deque[T] {
	if maxLen < 1 {
		panic("deque: maxlen must be >= 1")
	}
	if len(items) > maxLen {
		items = items[len(items)-maxLen:]
	}

	d := &Deque[T]{maxLen: maxLen}
	if len(items) == 0 {
		return d
	}
	d.buf = make([]T, d.targetCap(len(items)))
	copy(d.buf, items)
	d.size = len(items)
	return d
}

// PushBack appends v at the back. If the deque was full, the front
// element is evicted first and returned with true; otherwise the zero
// value and false are returned.
func (d *Deque[T]) PushBack(v T) (T, bool) {
	if d.size == d.maxLen {
		evicted, _ := d.PopFront()
		d.pushBack(v)
		return evicted, true
	}
	d.pushBack(v)
	var zero T
	return zero, false
}

// PushFront prepends v at the front. If the deque was full, the back
// element is evicted first and returned with true; otherwise the zero
// value and false are returned.
func (d *Deque[T]) PushFront(v T) (T, bool) {
	if d.size == d.maxLen {
		evicted, _ := d.PopBack()
		d.pushFront(v)
		return evicted, true
	}
	d.pushFront(v)
	var zero T
	return zero, false
}

// PopFront removes and returns the front element, or (zero, false) if
// the deque is empty. Popping never evicts.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero // release the reference
	d.head = (d.head + 1) & d.mask()
	d.size--
	return v, true
}

// PopBack removes and returns the back element, or (zero, false) if the
// deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := d.pos(d.size - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.size--
	return v, true
}

// Front returns the front element without removing it, or (zero, false)
// if the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the back element without removing it, or (zero, false)
// if the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.pos(d.size-1)], true
}

// Get returns the element at index i (0-based from the front), or
// (zero, false) if i is out of range. It never panics.
func (d *Deque[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.size {
		var zero T
		return zero, false
	}
	return d.buf[d.pos(i)], true
}

// Set replaces the element at index i and reports whether i was in
// range. Out-of-range writes are ignored.
func (d *Deque[T]) Set(i int, v T) bool {
	if i < 0 || i >= d.size {
		return false
	}
	d.buf[d.pos(i)] = v
	return true
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// IsFull reports whether Len() == MaxLen().
func (d *Deque[T]) IsFull() bool {
	return d.size == d.maxLen
}

// MaxLen returns the maximum number of elements the deque may hold.
func (d *Deque[T]) MaxLen() int {
	return d.maxLen
}

// Cap returns the number of elements the deque can hold without
// reallocating, never more than MaxLen.
func (d *Deque[T]) Cap() int {
	return min(len(d.buf), d.maxLen)
}

// RemainingCap returns how many elements fit before the deque is full.
func (d *Deque[T]) RemainingCap() int {
	return d.maxLen - d.size
}

// SetMaxLen changes the maximum length. If n is smaller than the current
// length, the oldest (front) elements are dropped until Len() == n.
// It panics if n < 1.
func (d *Deque[T]) SetMaxLen(n int) {
	if n < 1 {
		panic("deque: maxlen must be >= 1")
	}
	for d.size > n {
		d.PopFront()
	}
	d.maxLen = n
}

// Clear removes all elements, keeping the maximum length. References
// held by the backing ring are released.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}

// mask returns the index mask of the backing ring. Only valid when the
// ring is allocated (len(buf) is a power of two).
func (d *Deque[T]) mask() int {
	return len(d.buf) - 1
}

// pos maps a logical index (0 = front) to a ring index.
func (d *Deque[T]) pos(i int) int {
	return (d.head + i) & d.mask()
}

// targetCap returns the ring allocation for holding need elements:
// a power of two, at least minAllocation, clamped so the deque never
// allocates past what maxLen requires.
func (d *Deque[T]) targetCap(need int) int {
	c := max(need, minAllocation)
	c = min(c, d.maxLen)
	return utils.CeilToPowerOfTwo(c)
}

// pushBack writes v after the last element, growing the ring if needed.
// The caller guarantees size < maxLen.
func (d *Deque[T]) pushBack(v T) {
	if d.size == len(d.buf) {
		d.realloc(d.size + 1)
	}
	d.buf[d.pos(d.size)] = v
	d.size++
}

// pushFront writes v before the first element, growing the ring if
// needed. The caller guarantees size < maxLen.
func (d *Deque[T]) pushFront(v T) {
	if d.size == len(d.buf) {
		d.realloc(d.size + 1)
	}
	d.head = (d.head - 1) & d.mask()
	d.buf[d.head] = v
	d.size++
}

// realloc moves the elements into a fresh ring sized for need. Only
// called when the current ring is full, so the whole old buffer is
// live and copies over in two contiguous segments.
func (d *Deque[T]) realloc(need int) {
	newBuf := make([]T, d.targetCap(need))
	n := copy(newBuf, d.buf[d.head:])
	copy(newBuf[n:], d.buf[:d.head])
	d.buf = newBuf
	d.head = 0
}
