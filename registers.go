package modbus

// Registers is a zero-copy, read-only view over big-endian 16-bit
// words. It borrows data; it never allocates or copies.
type Registers struct {
	data     []byte
	quantity int
}

// NewRegistersView wraps an existing big-endian byte slice as a
// Registers view without copying. The caller guarantees
// len(data) >= 2*quantity.
func NewRegistersView(data []byte, quantity int) Registers {
	return Registers{data: data, quantity: quantity}
}

// NewRegistersFromWords writes words big-endian into dst and
// returns a view over it. Fails with ErrBufferSize if dst is too
// small or words is empty.
func NewRegistersFromWords(words []uint16, dst []byte) (Registers, error) {
	if err := packRegisters(words, dst); err != nil {
		return Registers{}, err
	}
	return Registers{data: dst, quantity: len(words)}, nil
}

// Len returns the declared word count.
func (r Registers) Len() int { return r.quantity }

// IsEmpty reports whether the view has zero words.
func (r Registers) IsEmpty() bool { return r.quantity == 0 }

// Get returns the word at idx, or (0, false) if idx is out of range.
func (r Registers) Get(idx int) (uint16, bool) {
	if idx < 0 || idx >= r.quantity {
		return 0, false
	}
	return getRegister(r.data, idx), true
}

// All returns every word in order. Allocates: for tests/demo
// tooling, not the hot codec path.
func (r Registers) All() []uint16 {
	out := make([]uint16, r.quantity)
	for i := range out {
		out[i] = getRegister(r.data, i)
	}
	return out
}

// Data returns the underlying big-endian byte slice.
func (r Registers) Data() []byte { return r.data }
