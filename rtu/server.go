package rtu

import "github.com/hootrhino/modbuscore"

// DecodeRequest resynchronizes onto a framed RTU request in buf and
// parses its PDU. Grounded on
// original_source/src/codec/rtu/server.rs decode_request.
func DecodeRequest(buf []byte, maxFrameLen int) (modbus.Request, uint8, FrameLocation, bool, error) {
	frame, loc, ok, err := Decode(DecodeRequestFrame, buf, maxFrameLen)
	if !ok || err != nil {
		return modbus.Request{}, 0, loc, ok, err
	}
	req, err := modbus.ParseRequestPDU(frame.PDU)
	if err != nil {
		return modbus.Request{}, 0, loc, true, &modbus.CodecError{Kind: modbus.ErrProtocolInvariant}
	}
	return req, frame.Slave, loc, true, nil
}

// EncodeResponse serializes a response PDU framed for RTU (slave
// address, PDU, CRC-16 trailer) into dst. Grounded on server.rs
// encode_response.
func EncodeResponse(slave uint8, resp modbus.Response, dst []byte) (int, error) {
	need := 1 + resp.PDULen() + 2
	if len(dst) < need {
		return 0, modbus.ErrBufferSizeSentinel
	}
	dst[0] = slave
	n, err := resp.Encode(dst[1:])
	if err != nil {
		return 0, err
	}
	aduLen := 1 + n
	crc := CRC16(dst[:aduLen])
	dst[aduLen] = byte(crc >> 8)
	dst[aduLen+1] = byte(crc)
	return aduLen + 2, nil
}

// EncodeExceptionResponse serializes an exception response framed
// for RTU.
func EncodeExceptionResponse(slave uint8, er modbus.ExceptionResponse, dst []byte) (int, error) {
	need := 1 + er.PDULen() + 2
	if len(dst) < need {
		return 0, modbus.ErrBufferSizeSentinel
	}
	dst[0] = slave
	n, err := er.Encode(dst[1:])
	if err != nil {
		return 0, err
	}
	aduLen := 1 + n
	crc := CRC16(dst[:aduLen])
	dst[aduLen] = byte(crc >> 8)
	dst[aduLen+1] = byte(crc)
	return aduLen + 2, nil
}
