package deque

const (
	// minAllocation is the smallest backing-ring allocation (in elements)
	// for a non-empty deque. Tiny maxlens still get at least this much to
	// avoid repeated reallocation at small sizes.
	minAllocation = 8
)
