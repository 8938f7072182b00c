package tcp

import "github.com/hootrhino/modbuscore"

// EncodeRequest serializes a request PDU framed in an MBAP header
// (transaction id, protocol id 0, length, unit id) into dst. Grounded
// on original_source/src/codec/tcp/client.rs encode_request.
func EncodeRequest(transactionID uint16, unit uint8, req modbus.Request, dst []byte) (int, error) {
	need := HeaderLength + req.PDULen()
	if len(dst) < need {
		return 0, modbus.ErrBufferSizeSentinel
	}
	n, err := req.Encode(dst[HeaderLength:])
	if err != nil {
		return 0, err
	}
	putHeader(dst, transactionID, uint16(1+n), unit)
	return HeaderLength + n, nil
}

// ExceptionError wraps a decoded exception response.
type ExceptionError struct {
	Response modbus.ExceptionResponse
}

func (e *ExceptionError) Error() string {
	return "modbus: device returned exception: " + e.Response.Exception.String()
}

// DecodeResponse resynchronizes onto a framed TCP response in buf and
// parses its PDU, trying an exception response before a normal one.
// Grounded on client.rs decode_response.
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

func putHeader(dst []byte, transactionID, length uint16, unit uint8) {
	dst[0] = byte(transactionID >> 8)
	dst[1] = byte(transactionID)
	dst[2] = 0
	dst[3] = 0
	dst[4] = byte(length >> 8)
	dst[5] = byte(length)
	dst[6] = unit
}
