package deque

// Truncate keeps the first n elements and drops the rest. It is a no-op
// when n >= Len(); negative n is treated as 0. The maximum length is
// unchanged.
func (d *Deque[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	for d.size > n {
		d.PopBack()
	}
}

// Remove removes and returns the element at index i, shifting the
// smaller side of the deque to close the gap. It returns (zero, false)
// if i is out of range.
func (d *Deque[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= d.size {
		return zero, false
	}
	v := d.buf[d.pos(i)]

	if i < d.size/2 {
		// Shift the front segment right and drop the old front slot.
		for j := i; j > 0; j-- {
			d.buf[d.pos(j)] = d.buf[d.pos(j-1)]
		}
		d.buf[d.head] = zero
		d.head = (d.head + 1) & d.mask()
	} else {
		// Shift the back segment left and drop the old back slot.
		for j := i; j < d.size-1; j++ {
			d.buf[d.pos(j)] = d.buf[d.pos(j+1)]
		}
		d.buf[d.pos(d.size-1)] = zero
	}
	d.size--
	return v, true
}

// Retain keeps only the elements for which keep returns true, visiting
// each element once front-to-back and preserving the order of the kept
// elements.
func (d *Deque[T]) Retain(keep func(T) bool) {
	var zero T
	w := 0
	for r := 0; r < d.size; r++ {
		v := d.buf[d.pos(r)]
		if !keep(v) {
			continue
		}
		if w != r {
			d.buf[d.pos(w)] = v
		}
		w++
	}
	for j := w; j < d.size; j++ {
		d.buf[d.pos(j)] = zero
	}
	d.size = w
}

// Swap exchanges the elements at indices i and j. Index 0 is the front.
// It panics if either index is out of range.
func (d *Deque[T]) Swap(i, j int) {
	if i < 0 || i >= d.size || j < 0 || j >= d.size {
		panic("deque: index out of range")
	}
	pi, pj := d.pos(i), d.pos(j)
	d.buf[pi], d.buf[pj] = d.buf[pj], d.buf[pi]
}

// RotateLeft rotates the deque n places to the left, moving the front
// towards the back. n is reduced modulo Len(); negative n rotates
// right. Rotating an empty deque is a no-op.
func (d *Deque[T]) RotateLeft(n int) {
	if d.size == 0 {
		return
	}
	n = ((n % d.size) + d.size) % d.size
	for ; n > 0; n-- {
		v, _ := d.PopFront()
		d.pushBack(v)
	}
}

// RotateRight rotates the deque n places to the right, moving the back
// towards the front. n is reduced modulo Len(); negative n rotates
// left. Rotating an empty deque is a no-op.
func (d *Deque[T]) RotateRight(n int) {
	if d.size == 0 {
		return
	}
	n = ((n % d.size) + d.size) % d.size
	for ; n > 0; n-- {
		v, _ := d.PopBack()
		d.pushFront(v)
	}
}

// Reverse reverses the order of the elements in place.
func (d *Deque[T]) Reverse() {
	for i, j := 0, d.size-1; i < j; i, j = i+1, j-1 {
		pi, pj := d.pos(i), d.pos(j)
		d.buf[pi], d.buf[pj] = d.buf[pj], d.buf[pi]
	}
}

// Extend pushes each item to the back in order, evicting from the front
// as needed. After the call the deque holds the last MaxLen() of the
// previous contents followed by items.
func (d *Deque[T]) Extend(items ...T) {
	for _, v := range items {
		d.PushBack(v)
	}
}

// ExtendFront pushes each item to the front in order, evicting from the
// back as needed. The final order of the new elements is reversed
// relative to the input, matching repeated PushFront calls.
func (d *Deque[T]) ExtendFront(items ...T) {
	for _, v := range items {
		d.PushFront(v)
	}
}

// ToSlice returns the elements in a fresh slice, front-to-back, or nil
// when the deque is empty.
func (d *Deque[T]) ToSlice() []T {
	if d.size == 0 {
		return nil
	}
	out := make([]T, d.size)
	n := copy(out, d.buf[d.head:min(d.head+d.size, len(d.buf))])
	copy(out[n:], d.buf[:d.size-n])
	return out
}

// Clone returns a deep copy of the deque structure. Elements themselves
// are copied by assignment.
func (d *Deque[T]) Clone() *Deque[T] {
	nd := &Deque[T]{
		head:   d.head,
		size:   d.size,
		maxLen: d.maxLen,
	}
	if d.buf != nil {
		nd.buf = make([]T, len(d.buf))
		copy(nd.buf, d.buf)
	}
	return nd
}
