package deque

import (
	"testing"
)

// =============================================================================
// Method: Values()
// =============================================================================

func TestDeque_Values(t *testing.T) {
	d := wrapped([]int{5, 3, 4}, 3)

	var got []int
	for v := range d.Values() {
		got = append(got, v)
	}
	want := []int{5, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("yielded %d values; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value[%d] = %d; want %d", i, got[i], want[i])
		}
	}
}

func TestDeque_Values_Restartable(t *testing.T) {
	d := FromSlice([]int{1, 2, 3}, 3)
	seq := d.Values()

	for pass := 0; pass < 2; pass++ {
		n := 0
		for v := range seq {
			if v != n+1 {
				t.Errorf("pass %d: value = %d; want %d", pass, v, n+1)
			}
			n++
		}
		if n != 3 {
			t.Errorf("pass %d: yielded %d values; want 3", pass, n)
		}
	}
}

func TestDeque_Values_EarlyBreak(t *testing.T) {
	d := FromSlice([]int{1, 2, 3, 4, 5}, 5)
	n := 0
	for range d.Values() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("consumed %d values; want 2", n)
	}
}

func TestDeque_Values_Empty(t *testing.T) {
	d := New[int](3)
	for range d.Values() {
		t.Fatal("empty deque yielded a value")
	}
}

// =============================================================================
// Method: All() / Backward()
// =============================================================================

func TestDeque_All(t *testing.T) {
	d := FromSlice([]int{10, 20, 30}, 5)

	next := 0
	for i, v := range d.All() {
		if i != next {
			t.Errorf("index = %d; want %d", i, next)
		}
		if want, _ := d.Get(i); v != want {
			t.Errorf("All[%d] = %d; want %d", i, v, want)
		}
		next++
	}
	if next != 3 {
		t.Errorf("yielded %d pairs; want 3", next)
	}
}

func TestDeque_Backward(t *testing.T) {
	d := FromSlice([]int{10, 20, 30}, 5)

	want := 2
	for i, v := range d.Backward() {
		if i != want {
			t.Errorf("index = %d; want %d", i, want)
		}
		if w, _ := d.Get(i); v != w {
			t.Errorf("Backward[%d] = %d; want %d", i, v, w)
		}
		want--
	}
	if want != -1 {
		t.Errorf("stopped at index %d; want full pass", want+1)
	}
}
