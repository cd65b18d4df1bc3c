package deque

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

var (
	_ cbor.Marshaler   = (*Deque[int])(nil)
	_ cbor.Unmarshaler = (*Deque[int])(nil)
)

// MarshalCBOR encodes the deque as a CBOR map with the same shape as
// the JSON form: {"items": [...], "maxlen": n}.
func (d *Deque[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(d.marshalEnvelope())
}

// UnmarshalCBOR decodes a CBOR payload produced by MarshalCBOR,
// replacing the deque's contents. Validation matches UnmarshalJSON:
// the deque is unchanged on error.
func (d *Deque[T]) UnmarshalCBOR(data []byte) error {
	var env envelope[T]
	if err := cbor.Unmarshal(data, &env); err != nil {
		return errors.Wrap(err, "deque: decode cbor")
	}
	return d.load(env)
}
