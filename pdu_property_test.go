package modbus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

// TestRequestEncodeDecodeRoundTripProperty exercises the round-trip
// law from SPEC_FULL.md §8 over randomly generated simple requests
// (the fixed-width variants, whose views need no backing buffer
// juggling inside the generator).
func TestRequestEncodeDecodeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		address := rapid.Uint16().Draw(rt, "address")
		quantity := rapid.Uint16().Draw(rt, "quantity")
		kind := rapid.IntRange(0, 3).Draw(rt, "kind")

		var want Request
		switch kind {
		case 0:
			want = ReadCoilsRequest(address, quantity)
		case 1:
			want = ReadHoldingRegistersRequest(address, quantity)
		case 2:
			want = WriteSingleRegisterRequest(address, quantity)
		case 3:
			want = WriteSingleCoilRequest(address, quantity%2 == 0)
		}

		buf := make([]byte, want.PDULen())
		n, err := want.Encode(buf)
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}
		got, err := ParseRequestPDU(buf[:n])
		if err != nil {
			rt.Fatalf("decode: %v", err)
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(Coils{}, Registers{}, FunctionCode{})); diff != "" {
			rt.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestEncodeBufferSizeBoundaryProperty exercises the bounds property
// from SPEC_FULL.md §8: Encode fails one byte short, succeeds exact.
func TestEncodeBufferSizeBoundaryProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		address := rapid.Uint16().Draw(rt, "address")
		value := rapid.Uint16().Draw(rt, "value")
		r := WriteSingleRegisterRequest(address, value)
		n := r.PDULen()

		if _, err := r.Encode(make([]byte, n-1)); err == nil {
			rt.Fatalf("expected ErrBufferSize for one-byte-short buffer")
		}
		if _, err := r.Encode(make([]byte, n)); err != nil {
			rt.Fatalf("expected success for exact-size buffer, got %v", err)
		}
	})
}
