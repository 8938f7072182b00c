package tcp

import "github.com/hootrhino/modbuscore"

// DecodeRequest resynchronizes onto a framed TCP request in buf and
// parses its PDU. Grounded on
// original_source/src/codec/tcp/server.rs decode_request.
func DecodeRequest(buf []byte, maxFrameLen int) (modbus.Request, uint16, uint8, FrameLocation, bool, error) {
	frame, loc, ok, err := Decode(DecodeRequestFrame, buf, maxFrameLen)
	if !ok || err != nil {
		return modbus.Request{}, 0, 0, loc, ok, err
	}
	req, err := modbus.ParseRequestPDU(frame.PDU)
	if err != nil {
		return modbus.Request{}, 0, 0, loc, true, &modbus.CodecError{Kind: modbus.ErrProtocolInvariant}
	}
	return req, frame.TransactionID, frame.Unit, loc, true, nil
}

// EncodeResponse serializes a response PDU framed in an MBAP header
// into dst, echoing the request's transaction id and unit id.
// Grounded on server.rs encode_response.
func EncodeResponse(transactionID uint16, unit uint8, resp modbus.Response, dst []byte) (int, error) {
	need := HeaderLength + resp.PDULen()
	if len(dst) < need {
		return 0, modbus.ErrBufferSizeSentinel
	}
	n, err := resp.Encode(dst[HeaderLength:])
	if err != nil {
		return 0, err
	}
	putHeader(dst, transactionID, uint16(1+n), unit)
	return HeaderLength + n, nil
}

// EncodeExceptionResponse serializes an exception response framed in
// an MBAP header into dst.
func EncodeExceptionResponse(transactionID uint16, unit uint8, er modbus.ExceptionResponse, dst []byte) (int, error) {
	need := HeaderLength + er.PDULen()
	if len(dst) < need {
		return 0, modbus.ErrBufferSizeSentinel
	}
	n, err := er.Encode(dst[HeaderLength:])
	if err != nil {
		return 0, err
	}
	putHeader(dst, transactionID, uint16(1+n), unit)
	return HeaderLength + n, nil
}
