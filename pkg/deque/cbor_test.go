package deque

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// =============================================================================
// Round-trip
// =============================================================================

func TestDeque_CBORRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Deque[int]
	}{
		{"empty", func() *Deque[int] { return New[int](3) }},
		{"partial", func() *Deque[int] { return FromSlice([]int{1, 2}, 3) }},
		{"full", func() *Deque[int] { return FromSlice([]int{1, 2, 3}, 3) }},
		{"wrapped_ring", func() *Deque[int] { return wrapped([]int{1, 2, 3, 4, 5}, 5) }},
		{
			"after_eviction",
			func() *Deque[int] {
				d := New[int](2)
				d.Extend(1, 2, 3, 4)
				return d
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.build()
			data, err := cbor.Marshal(orig)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var decoded Deque[int]
			if err := cbor.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !Equal(orig, &decoded) {
				t.Error("round-trip mismatch")
			}
		})
	}
}

// =============================================================================
// Method: UnmarshalCBOR()
// =============================================================================

func TestDeque_UnmarshalCBOR_Rejects(t *testing.T) {
	encode := func(items []int, maxLen int) []byte {
		data, err := cbor.Marshal(envelope[int]{Items: items, MaxLen: maxLen})
		if err != nil {
			t.Fatalf("encode fixture: %v", err)
		}
		return data
	}

	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{"zero_maxlen", encode([]int{}, 0), ErrInvalidMaxLen},
		{"negative_maxlen", encode([]int{}, -1), ErrInvalidMaxLen},
		{"overflow", encode([]int{1, 2, 3, 4}, 3), ErrLengthExceedsMaxLen},
		{"garbage", []byte{0xff, 0x00}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromSlice([]int{7, 8}, 9)
			err := cbor.Unmarshal(tt.payload, d)
			if err == nil {
				t.Fatal("Unmarshal succeeded; want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v; want %v in chain", err, tt.wantErr)
			}
			if d.MaxLen() != 9 {
				t.Errorf("MaxLen = %d after failed decode; want 9", d.MaxLen())
			}
			wantElems(t, d, []int{7, 8})
		})
	}
}

// =============================================================================
// Cross-codec consistency
// =============================================================================

func TestDeque_CBORMatchesJSONShape(t *testing.T) {
	d := FromSlice([]int{1, 2}, 4)
	data, err := cbor.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// Decoding as a raw map exposes the same envelope keys as JSON.
	var raw map[string]any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal raw: %v", err)
	}
	if _, ok := raw["items"]; !ok {
		t.Error(`encoded CBOR map missing "items"`)
	}
	if _, ok := raw["maxlen"]; !ok {
		t.Error(`encoded CBOR map missing "maxlen"`)
	}
}
