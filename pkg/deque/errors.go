package deque

import "errors"

var (
	// ErrInvalidMaxLen is returned when a decoded payload carries a maxlen
	// smaller than 1.
	ErrInvalidMaxLen = errors.New("maxlen must be >= 1")

	// ErrLengthExceedsMaxLen is returned when a decoded payload holds more
	// items than its own maxlen allows.
	ErrLengthExceedsMaxLen = errors.New("item count exceeds maxlen")
)
