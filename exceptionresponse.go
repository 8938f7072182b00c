package modbus

// ExceptionResponse is a well-formed negative acknowledgement: the
// server's way of saying "understood the code, but here is why I
// won't answer it". It is NOT a codec error.
type ExceptionResponse struct {
	Function  FunctionCode
	Exception Exception
}

// PDULen is always 2: [function|0x80, exception_code].
func (e ExceptionResponse) PDULen() int { return 2 }

// Encode writes the two-byte exception PDU.
func (e ExceptionResponse) Encode(buf []byte) (int, error) {
	if len(buf) < 2 {
		return 0, &CodecError{Kind: ErrBufferSize}
	}
	buf[0] = e.Function.Value() | 0x80
	buf[1] = byte(e.Exception)
	return 2, nil
}

// ParseExceptionResponsePDU decodes an exception-response PDU. It
// fails with ErrExceptionFnCode if the leading byte's high bit is
// clear (not an exception response at all).
func ParseExceptionResponsePDU(pdu []byte) (ExceptionResponse, error) {
	if len(pdu) < 2 {
		return ExceptionResponse{}, &CodecError{Kind: ErrBufferSize}
	}
	c := pdu[0]
	if c < 0x80 {
		return ExceptionResponse{}, &CodecError{Kind: ErrExceptionFnCode, Byte: c}
	}
	fc, err := ClassifyFunctionCode(c &^ 0x80)
	if err != nil {
		return ExceptionResponse{}, err
	}
	exc, err := ParseException(pdu[1])
	if err != nil {
		return ExceptionResponse{}, err
	}
	return ExceptionResponse{Function: fc, Exception: exc}, nil
}
