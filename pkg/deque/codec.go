package deque

import "github.com/pkg/errors"

// envelope is the serialized form shared by every codec: the ordered
// element list plus the maximum length, so a round-trip restores an
// equal deque including its window size.
type envelope[T any] struct {
	Items  []T `json:"items" cbor:"items"`
	MaxLen int `json:"maxlen" cbor:"maxlen"`
}

// marshalEnvelope snapshots the deque. Items is never nil so the
// encoded form carries an empty list rather than null.
func (d *Deque[T]) marshalEnvelope() envelope[T] {
	items := d.ToSlice()
	if items == nil {
		items = []T{}
	}
	return envelope[T]{Items: items, MaxLen: d.maxLen}
}

// load validates a decoded envelope and replaces the receiver's
// contents. On error the receiver is left unchanged: a payload is
// rejected when its maxlen is invalid or when it holds more items than
// its maxlen allows.
func (d *Deque[T]) load(env envelope[T]) error {
	if env.MaxLen < 1 {
		return errors.Wrapf(ErrInvalidMaxLen, "deque: decoded maxlen %d", env.MaxLen)
	}
	if len(env.Items) > env.MaxLen {
		return errors.Wrapf(ErrLengthExceedsMaxLen, "deque: decoded %d items with maxlen %d", len(env.Items), env.MaxLen)
	}
	*d = *FromSlice(env.Items, env.MaxLen)
	return nil
}
