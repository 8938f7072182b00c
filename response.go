package modbus

// Response is a tagged union over every response PDU this codec
// understands. See SPEC_FULL.md §3/§4.4/§9/§10 for field mapping and
// the decode-only RTU diagnostic variants.
type Response struct {
	Function FunctionCode

	Coils      Coils
	Registers  Registers
	Address    uint16
	Value      uint16
	Status     uint8
	EventCount uint16
	Data       []byte
}

func ReadCoilsResponse(coils Coils) Response {
	return Response{Function: FuncReadCoils, Coils: coils}
}

func ReadDiscreteInputsResponse(coils Coils) Response {
	return Response{Function: FuncReadDiscreteInputs, Coils: coils}
}

func ReadHoldingRegistersResponse(regs Registers) Response {
	return Response{Function: FuncReadHoldingRegisters, Registers: regs}
}

func ReadInputRegistersResponse(regs Registers) Response {
	return Response{Function: FuncReadInputRegisters, Registers: regs}
}

// WriteSingleCoilResponse carries the raw 16-bit coil-echo word, per
// the 3-byte response shape documented in SPEC_FULL.md §9 (Open
// Question #2).
func WriteSingleCoilResponse(word uint16) Response {
	return Response{Function: FuncWriteSingleCoil, Value: word}
}

func WriteSingleRegisterResponse(address, value uint16) Response {
	return Response{Function: FuncWriteSingleRegister, Address: address, Value: value}
}

func WriteMultipleCoilsResponse(address, quantity uint16) Response {
	return Response{Function: FuncWriteMultipleCoils, Address: address, Value: quantity}
}

func WriteMultipleRegistersResponse(address, quantity uint16) Response {
	return Response{Function: FuncWriteMultipleRegisters, Address: address, Value: quantity}
}

func ReadWriteMultipleRegistersResponse(regs Registers) Response {
	return Response{Function: FuncReadWriteMultipleRegisters, Registers: regs}
}

// ReadExceptionStatusResponse is decode-only; see SPEC_FULL.md §10.
func ReadExceptionStatusResponse(status uint8) Response {
	return Response{Function: FuncReadExceptionStatus, Status: status}
}

// GetCommEventCounterResponse is decode-only; see SPEC_FULL.md §10.
func GetCommEventCounterResponse(status, eventCount uint16) Response {
	return Response{Function: FuncGetCommEventCounter, Value: status, EventCount: eventCount}
}

// GetCommEventLogResponse is decode-only; see SPEC_FULL.md §10.
func GetCommEventLogResponse(data []byte) Response {
	return Response{Function: FuncGetCommEventLog, Data: data}
}

// ReportServerIdResponse is decode-only; see SPEC_FULL.md §10.
func ReportServerIdResponse(data []byte) Response {
	return Response{Function: FuncReportServerId, Data: data}
}

func CustomResponse(fc FunctionCode, data []byte) Response {
	return Response{Function: fc, Data: data}
}

// decodeOnlyResponse reports whether c is one of the function codes
// whose Response.Encode returns ErrUnsupported: the source this codec was grounded on
// never completed their wire encoders (SPEC_FULL.md §9/§10).
func decodeOnlyResponse(c uint8) bool {
	switch c {
	case FuncDiagnostics.Value(), FuncGetCommEventCounter.Value(),
		FuncGetCommEventLog.Value(), FuncReportServerId.Value(),
		FuncReadExceptionStatus.Value():
		return true
	default:
		return false
	}
}

// minResponsePDULen returns the shortest possible PDU for a given
// leading function-code byte, per SPEC_FULL.md §4.4.
func minResponsePDULen(c uint8) int {
	switch {
	case c == 0x01 || c == 0x02 || c == 0x03 || c == 0x04 || c == 0x17:
		return 2
	case c == 0x05:
		return 3
	case c == 0x06 || c == 0x0B || c == 0x0F || c == 0x10:
		return 5
	default:
		return 1
	}
}

// PDULen returns the number of bytes Encode will write for r.
func (r Response) PDULen() int {
	switch r.Function.Value() {
	case FuncReadCoils.Value(), FuncReadDiscreteInputs.Value():
		return 2 + r.Coils.PackedLen()
	case FuncReadHoldingRegisters.Value(), FuncReadInputRegisters.Value(),
		FuncReadWriteMultipleRegisters.Value():
		return 2 + 2*r.Registers.Len()
	case FuncWriteSingleCoil.Value():
		return 3
	case FuncWriteSingleRegister.Value(), FuncWriteMultipleCoils.Value(),
		FuncWriteMultipleRegisters.Value():
		return 5
	default:
		return 1 + len(r.Data)
	}
}

// Encode serializes r into buf. Returns ErrUnsupported for the
// decode-only RTU diagnostic variants (SPEC_FULL.md §9).
func (r Response) Encode(buf []byte) (int, error) {
	if decodeOnlyResponse(r.Function.Value()) {
		return 0, &CodecError{Kind: ErrUnsupported}
	}
	n := r.PDULen()
	if len(buf) < n {
		return 0, &CodecError{Kind: ErrBufferSize}
	}
	buf[0] = r.Function.Value()
	switch r.Function.Value() {
	case FuncReadCoils.Value(), FuncReadDiscreteInputs.Value():
		bc := r.Coils.PackedLen()
		buf[1] = byte(bc)
		copy(buf[2:2+bc], r.Coils.Data())
	case FuncReadHoldingRegisters.Value(), FuncReadInputRegisters.Value(),
		FuncReadWriteMultipleRegisters.Value():
		bc := 2 * r.Registers.Len()
		buf[1] = byte(bc)
		copy(buf[2:2+bc], r.Registers.Data())
	case FuncWriteSingleCoil.Value():
		putBE16(buf[1:3], r.Value)
	case FuncWriteSingleRegister.Value(), FuncWriteMultipleCoils.Value(),
		FuncWriteMultipleRegisters.Value():
		putBE16(buf[1:3], r.Address)
		putBE16(buf[3:5], r.Value)
	default:
		copy(buf[1:], r.Data)
	}
	return n, nil
}

// ParseResponsePDU decodes a Response from a raw PDU byte slice (the
// exception-response leading-byte case is handled separately by
// ParseExceptionResponsePDU — callers try that first).
func ParseResponsePDU(pdu []byte) (Response, error) {
	if len(pdu) == 0 {
		return Response{}, &CodecError{Kind: ErrBufferSize}
	}
	c := pdu[0]
	if c >= 0x80 {
		return Response{}, &CodecError{Kind: ErrFnCode, Byte: c}
	}
	if len(pdu) < minResponsePDULen(c) {
		return Response{}, &CodecError{Kind: ErrBufferSize}
	}
	switch c {
	case FuncReadCoils.Value(), FuncReadDiscreteInputs.Value():
		bc := int(pdu[1])
		if len(pdu) < 2+bc {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		coils := NewCoilsView(pdu[2:2+bc], bc*8)
		if c == FuncReadCoils.Value() {
			return ReadCoilsResponse(coils), nil
		}
		return ReadDiscreteInputsResponse(coils), nil
	case FuncReadHoldingRegisters.Value(), FuncReadInputRegisters.Value():
		bc := int(pdu[1])
		if len(pdu) < 2+bc {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		regs := NewRegistersView(pdu[2:2+bc], bc/2)
		if c == FuncReadHoldingRegisters.Value() {
			return ReadHoldingRegistersResponse(regs), nil
		}
		return ReadInputRegistersResponse(regs), nil
	case FuncReadWriteMultipleRegisters.Value():
		bc := int(pdu[1])
		if len(pdu) < 2+bc {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		return ReadWriteMultipleRegistersResponse(NewRegistersView(pdu[2:2+bc], bc/2)), nil
	case FuncWriteSingleCoil.Value():
		return WriteSingleCoilResponse(be16(pdu[1:3])), nil
	case FuncWriteSingleRegister.Value():
		return WriteSingleRegisterResponse(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncWriteMultipleCoils.Value():
		return WriteMultipleCoilsResponse(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncWriteMultipleRegisters.Value():
		return WriteMultipleRegistersResponse(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncReadExceptionStatus.Value():
		if len(pdu) < 2 {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		return ReadExceptionStatusResponse(pdu[1]), nil
	case FuncGetCommEventCounter.Value():
		if len(pdu) < 5 {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		return GetCommEventCounterResponse(be16(pdu[1:3]), be16(pdu[3:5])), nil
	case FuncGetCommEventLog.Value():
		if len(pdu) < 3 {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		bc := int(pdu[1])
		if len(pdu) < 2+bc {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		return GetCommEventLogResponse(pdu[2 : 2+bc]), nil
	case FuncReportServerId.Value():
		if len(pdu) < 2 {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		bc := int(pdu[1])
		if len(pdu) < 2+bc {
			return Response{}, &CodecError{Kind: ErrBufferSize}
		}
		return ReportServerIdResponse(pdu[2 : 2+bc]), nil
	default:
		fc, err := ClassifyFunctionCode(c)
		if err != nil {
			return Response{}, err
		}
		return CustomResponse(fc, pdu[1:]), nil
	}
}
