package modbus

// Request is a tagged union over every request PDU this codec
// understands. Function selects which of the fields below are
// meaningful; see the constructor for each variant and SPEC_FULL.md
// §3/§9 for the field mapping.
type Request struct {
	Function FunctionCode

	Address      uint16
	Quantity     uint16
	Value        uint16
	CoilValue    bool
	Coils        Coils
	Registers    Registers
	ReadAddress  uint16
	ReadQuantity uint16
	WriteAddress uint16
	Data         []byte
}

func ReadCoilsRequest(address, quantity uint16) Request {
	return Request{Function: FuncReadCoils, Address: address, Quantity: quantity}
}

func ReadDiscreteInputsRequest(address, quantity uint16) Request {
	return Request{Function: FuncReadDiscreteInputs, Address: address, Quantity: quantity}
}

func ReadHoldingRegistersRequest(address, quantity uint16) Request {
	return Request{Function: FuncReadHoldingRegisters, Address: address, Quantity: quantity}
}

func ReadInputRegistersRequest(address, quantity uint16) Request {
	return Request{Function: FuncReadInputRegisters, Address: address, Quantity: quantity}
}

func WriteSingleCoilRequest(address uint16, value bool) Request {
	return Request{Function: FuncWriteSingleCoil, Address: address, CoilValue: value}
}

func WriteSingleRegisterRequest(address, value uint16) Request {
	return Request{Function: FuncWriteSingleRegister, Address: address, Value: value}
}

func WriteMultipleCoilsRequest(address uint16, coils Coils) Request {
	return Request{Function: FuncWriteMultipleCoils, Address: address, Coils: coils}
}

func WriteMultipleRegistersRequest(address uint16, regs Registers) Request {
	return Request{Function: FuncWriteMultipleRegisters, Address: address, Registers: regs}
}

func ReadWriteMultipleRegistersRequest(readAddr, readQty, writeAddr uint16, regs Registers) Request {
	return Request{
		Function:     FuncReadWriteMultipleRegisters,
		ReadAddress:  readAddr,
		ReadQuantity: readQty,
		WriteAddress: writeAddr,
		Registers:    regs,
	}
}

func CustomRequest(fc FunctionCode, data []byte) Request {
	return Request{Function: fc, Data: data}
}

// minRequestPDULen returns the shortest possible PDU for a given
// leading function-code byte, per SPEC_FULL.md §4.3.
func minRequestPDULen(c uint8) int {
	switch {
	case c >= 0x01 && c <= 0x06:
		return 5
	case c == 0x0F || c == 0x10:
		return 6
	case c == 0x17:
		return 10
	default:
		return 1
	}
}

// PDULen returns the number of bytes Encode will write for r.
func (r Request) PDULen() int {
	switch r.Function.Value() {
	case FuncReadCoils.Value(), FuncReadDiscreteInputs.Value(),
		FuncReadHoldingRegisters.Value(), FuncReadInputRegisters.Value(),
		FuncWriteSingleCoil.Value(), FuncWriteSingleRegister.Value():
		return 5
	case FuncWriteMultipleCoils.Value():
		return 6 + r.Coils.PackedLen()
	case FuncWriteMultipleRegisters.Value():
		return 6 + 2*r.Registers.Len()
	case FuncReadWriteMultipleRegisters.Value():
		return 10 + 2*r.Registers.Len()
	default:
		return 1 + len(r.Data)
	}
}

// Encode serializes r into buf, returning the number of bytes
// written. Fails with ErrBufferSize if buf is too small.
func (r Request) Encode(buf []byte) (int, error) {
	n := r.PDULen()
	if len(buf) < n {
		return 0, &CodecError{Kind: ErrBufferSize}
	}
	buf[0] = r.Function.Value()
	switch r.Function.Value() {
	case FuncReadCoils.Value(), FuncReadDiscreteInputs.Value(),
		FuncReadHoldingRegisters.Value(), FuncReadInputRegisters.Value():
		putBE16(buf[1:3], r.Address)
		putBE16(buf[3:5], r.Quantity)
	case FuncWriteSingleCoil.Value():
		putBE16(buf[1:3], r.Address)
		putBE16(buf[3:5], boolToCoilWord(r.CoilValue))
	case FuncWriteSingleRegister.Value():
		putBE16(buf[1:3], r.Address)
		putBE16(buf[3:5], r.Value)
	case FuncWriteMultipleCoils.Value():
		putBE16(buf[1:3], r.Address)
		putBE16(buf[3:5], uint16(r.Coils.Len()))
		bc := r.Coils.PackedLen()
		buf[5] = byte(bc)
		copy(buf[6:6+bc], r.Coils.Data())
	case FuncWriteMultipleRegisters.Value():
		putBE16(buf[1:3], r.Address)
		putBE16(buf[3:5], uint16(r.Registers.Len()))
		bc := 2 * r.Registers.Len()
		buf[5] = byte(bc)
		copy(buf[6:6+bc], r.Registers.Data())
	case FuncReadWriteMultipleRegisters.Value():
		putBE16(buf[1:3], r.ReadAddress)
		putBE16(buf[3:5], r.ReadQuantity)
		putBE16(buf[5:7], r.WriteAddress)
		putBE16(buf[7:9], uint16(r.Registers.Len()))
		bc := 2 * r.Registers.Len()
		buf[9] = byte(bc)
		copy(buf[10:10+bc], r.Registers.Data())
	default:
		copy(buf[1:], r.Data)
	}
	return n, nil
}

// ParseRequestPDU decodes a Request from a raw PDU byte slice. The
// returned Request's Coils/Registers/Data views borrow bytes.
func ParseRequestPDU(pdu []byte) (Request, error) {
	if len(pdu) == 0 {
		return Request{}, &CodecError{Kind: ErrBufferSize}
	}
	c := pdu[0]
	if c >= 0x80 {
		return Request{}, &CodecError{Kind: ErrFnCode, Byte: c}
	}
	if len(pdu) < minRequestPDULen(c) {
		return Request{}, &CodecError{Kind: ErrBufferSize}
	}
	switch c {
	case FuncReadCoils.Value():
		return ReadCoilsRequest(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncReadDiscreteInputs.Value():
		return ReadDiscreteInputsRequest(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncReadHoldingRegisters.Value():
		return ReadHoldingRegistersRequest(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncReadInputRegisters.Value():
		return ReadInputRegistersRequest(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncWriteSingleCoil.Value():
		v, err := coilWordToBool(be16(pdu[3:5]))
		if err != nil {
			return Request{}, err
		}
		return WriteSingleCoilRequest(be16(pdu[1:3]), v), nil
	case FuncWriteSingleRegister.Value():
		return WriteSingleRegisterRequest(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncWriteMultipleCoils.Value():
		address, qty := be16(pdu[1:3]), be16(pdu[3:5])
		bc := int(pdu[5])
		if len(pdu) < 6+bc {
			return Request{}, &CodecError{Kind: ErrByteCount, Byte: pdu[5]}
		}
		return WriteMultipleCoilsRequest(address, NewCoilsView(pdu[6:6+bc], int(qty))), nil
	case FuncWriteMultipleRegisters.Value():
		address, qty := be16(pdu[1:3]), be16(pdu[3:5])
		bc := int(pdu[5])
		if len(pdu) < 6+bc {
			return Request{}, &CodecError{Kind: ErrByteCount, Byte: pdu[5]}
		}
		return WriteMultipleRegistersRequest(address, NewRegistersView(pdu[6:6+bc], int(qty))), nil
	case FuncReadWriteMultipleRegisters.Value():
		readAddr, readQty := be16(pdu[1:3]), be16(pdu[3:5])
		writeAddr, writeQty := be16(pdu[5:7]), be16(pdu[7:9])
		bc := int(pdu[9])
		if len(pdu) < 10+bc {
			return Request{}, &CodecError{Kind: ErrByteCount, Byte: pdu[9]}
		}
		return ReadWriteMultipleRegistersRequest(readAddr, readQty, writeAddr, NewRegistersView(pdu[10:10+bc], int(writeQty))), nil
	default:
		fc, err := ClassifyFunctionCode(c)
		if err != nil {
			return Request{}, err
		}
		return CustomRequest(fc, pdu[1:]), nil
	}
}
