package deque

import "iter"

// Values returns a front-to-back iterator over the elements. The
// sequence is lazy and restartable: ranging again yields a fresh pass.
// The deque must not be mutated while ranging.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.buf[d.pos(i)]) {
				return
			}
		}
	}
}

// All returns a front-to-back iterator over index/element pairs.
// Index 0 is the front.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, d.buf[d.pos(i)]) {
				return
			}
		}
	}
}

// Backward returns a back-to-front iterator over index/element pairs.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(i, d.buf[d.pos(i)]) {
				return
			}
		}
	}
}
