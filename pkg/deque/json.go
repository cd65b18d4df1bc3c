package deque

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	_ json.Marshaler   = (*Deque[int])(nil)
	_ json.Unmarshaler = (*Deque[int])(nil)
)

// MarshalJSON encodes the deque as {"items": [...], "maxlen": n}.
func (d *Deque[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.marshalEnvelope())
}

// UnmarshalJSON decodes a {"items": [...], "maxlen": n} payload,
// replacing the deque's contents. The payload is rejected when maxlen
// is missing or < 1 (ErrInvalidMaxLen) or when items is longer than
// maxlen (ErrLengthExceedsMaxLen); the deque is unchanged on error.
func (d *Deque[T]) UnmarshalJSON(data []byte) error {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.Wrap(err, "deque: decode json")
	}
	return d.load(env)
}
