// Package window provides sliding-window aggregates over the last N
// numeric samples, built on the bounded deque's eviction semantics.
package window

import (
	"iter"

	"github.com/huynhanx03/go-deque/pkg/deque"
)

// Number constrains the sample types a window can aggregate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Window keeps the most recent size samples and maintains a running
// sum, so Sum and Mean are O(1) per push. Not thread-safe.
type Window[T Number] struct {
	samples *deque.Deque[T]
	sum     T
}

// New creates an empty window over the last size samples.
// It panics if size < 1.
func New[T Number](size int) *Window[T] {
	return &Window[T]{samples: deque.New[T](size)}
}

// Push records a sample. When the window was already full, the
// displaced oldest sample is returned with true.
func (w *Window[T]) Push(v T) (T, bool) {
	old, evicted := w.samples.PushBack(v)
	w.sum += v
	if evicted {
		w.sum -= old
	}
	return old, evicted
}

// Len returns the number of recorded samples, at most Size().
func (w *Window[T]) Len() int {
	return w.samples.Len()
}

// Size returns the window capacity.
func (w *Window[T]) Size() int {
	return w.samples.MaxLen()
}

// Sum returns the sum of the samples currently in the window.
func (w *Window[T]) Sum() T {
	return w.sum
}

// Mean returns the average of the samples in the window, or 0 when the
// window is empty.
func (w *Window[T]) Mean() float64 {
	if w.samples.IsEmpty() {
		return 0
	}
	return float64(w.sum) / float64(w.samples.Len())
}

// Min returns the smallest sample in the window, or (zero, false) when
// the window is empty. O(n).
func (w *Window[T]) Min() (T, bool) {
	return w.scan(func(best, v T) bool { return v < best })
}

// Max returns the largest sample in the window, or (zero, false) when
// the window is empty. O(n).
func (w *Window[T]) Max() (T, bool) {
	return w.scan(func(best, v T) bool { return v > best })
}

// Values returns an oldest-to-newest iterator over the samples.
func (w *Window[T]) Values() iter.Seq[T] {
	return w.samples.Values()
}

// Reset discards all samples, keeping the window size.
func (w *Window[T]) Reset() {
	w.samples.Clear()
	w.sum = 0
}

func (w *Window[T]) scan(better func(best, v T) bool) (T, bool) {
	best, ok := w.samples.Front()
	if !ok {
		return best, false
	}
	for v := range w.samples.Values() {
		if better(best, v) {
			best = v
		}
	}
	return best, true
}
