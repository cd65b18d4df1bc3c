package deque

// Equality and content queries live at package level, in the style of
// the standard slices package, because methods cannot require a
// comparable type parameter.

// Equal reports whether a and b have the same maximum length and the
// same element sequence in the same order. Two nil deques are equal;
// a nil deque never equals a non-nil one.
func Equal[T comparable](a, b *Deque[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.maxLen != b.maxLen || a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[a.pos(i)] != b.buf[b.pos(i)] {
			return false
		}
	}
	return true
}

// EqualFunc is like Equal but compares elements with eq, allowing
// deques of different element types. Maximum lengths must still match.
func EqualFunc[T, U any](a *Deque[T], b *Deque[U], eq func(T, U) bool) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	if a.maxLen != b.maxLen || a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[a.pos(i)], b.buf[b.pos(i)]) {
			return false
		}
	}
	return true
}

// Contains reports whether the deque holds an element equal to v.
func Contains[T comparable](d *Deque[T], v T) bool {
	return Index(d, v) >= 0
}

// Index returns the index of the first element equal to v, or -1 if no
// element matches.
func Index[T comparable](d *Deque[T], v T) int {
	for i := 0; i < d.size; i++ {
		if d.buf[d.pos(i)] == v {
			return i
		}
	}
	return -1
}

// Count returns the number of elements equal to v.
func Count[T comparable](d *Deque[T], v T) int {
	n := 0
	for i := 0; i < d.size; i++ {
		if d.buf[d.pos(i)] == v {
			n++
		}
	}
	return n
}

// RemoveFirst removes the first element equal to v and returns it,
// or (zero, false) if no element matches.
func RemoveFirst[T comparable](d *Deque[T], v T) (T, bool) {
	if i := Index(d, v); i >= 0 {
		return d.Remove(i)
	}
	var zero T
	return zero, false
}
