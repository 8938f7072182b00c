package rtu

import "github.com/hootrhino/modbuscore"

// EncodeRequest serializes a request PDU framed for RTU (slave
// address, PDU, CRC-16 trailer) into dst, returning the number of
// bytes written. Grounded on original_source/src/codec/rtu/client.rs
// encode_request.
func EncodeRequest(slave uint8, req modbus.Request, dst []byte) (int, error) {
	need := 1 + req.PDULen() + 2
	if len(dst) < need {
		return 0, modbus.ErrBufferSizeSentinel
	}
	dst[0] = slave
	n, err := req.Encode(dst[1:])
	if err != nil {
		return 0, err
	}
	aduLen := 1 + n
	crc := CRC16(dst[:aduLen])
	dst[aduLen] = byte(crc >> 8)
	dst[aduLen+1] = byte(crc)
	return aduLen + 2, nil
}

// ExceptionError wraps a decoded exception response so callers can
// errors.As to it separately from transport-level CodecErrors.
type ExceptionError struct {
	Response modbus.ExceptionResponse
}

func (e *ExceptionError) Error() string {
	return "modbus: device returned exception: " + e.Response.Exception.String()
}

// DecodeResponse resynchronizes onto a framed RTU response in buf and
// parses its PDU, trying an exception response before a normal one. A
// PDU that passes CRC but fails both parses is a protocol invariant
// violation, since the frame integrity check already ran. Grounded on
// client.rs decode_response.
func DecodeResponse(buf []byte, maxFrameLen int) (modbus.Response, FrameLocation, bool, error) {
	frame, loc, ok, err := Decode(DecodeResponseFrame, buf, maxFrameLen)
	if !ok || err != nil {
		return modbus.Response{}, loc, ok, err
	}
	if er, exErr := modbus.ParseExceptionResponsePDU(frame.PDU); exErr == nil {
		return modbus.Response{}, loc, true, &ExceptionError{Response: er}
	}
	resp, err := modbus.ParseResponsePDU(frame.PDU)
	if err != nil {
		return modbus.Response{}, loc, true, &modbus.CodecError{Kind: modbus.ErrProtocolInvariant}
	}
	return resp, loc, true, nil
}
