package modbus

// Coils is a zero-copy, read-only view over packed coil bits. It
// borrows data; it never allocates or copies.
type Coils struct {
	data     []byte
	quantity int
}

// NewCoilsView wraps an existing packed-bit slice as a Coils view
// without copying. The caller guarantees len(data) >= packedLen(quantity).
func NewCoilsView(data []byte, quantity int) Coils {
	return Coils{data: data, quantity: quantity}
}

// NewCoilsFromBools packs bools LSB-first into dst and returns a
// view over it. Fails with ErrBufferSize if dst is too small.
func NewCoilsFromBools(bools []bool, dst []byte) (Coils, error) {
	if err := packCoils(bools, dst); err != nil {
		return Coils{}, err
	}
	return Coils{data: dst, quantity: len(bools)}, nil
}

// Len returns the declared coil count.
func (c Coils) Len() int { return c.quantity }

// IsEmpty reports whether the view has zero coils.
func (c Coils) IsEmpty() bool { return c.quantity == 0 }

// PackedLen returns the number of packed bytes the view occupies.
func (c Coils) PackedLen() int { return packedLen(c.quantity) }

// Get returns the coil at idx, or (false, false) if idx is out of range.
func (c Coils) Get(idx int) (bool, bool) {
	if idx < 0 || idx >= c.quantity {
		return false, false
	}
	return unpackCoil(c.data, idx), true
}

// All returns every coil in order as a []bool. Allocates: intended
// for callers outside the hot codec path (tests, demo tooling), not
// for use inside encode/decode.
func (c Coils) All() []bool {
	out := make([]bool, c.quantity)
	for i := range out {
		out[i] = unpackCoil(c.data, i)
	}
	return out
}

// Data returns the underlying packed-byte slice (exactly PackedLen
// bytes are meaningful; the slice itself may be longer).
func (c Coils) Data() []byte { return c.data }
