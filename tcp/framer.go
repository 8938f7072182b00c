// Package tcp implements the Modbus TCP transport: MBAP header
// framing and the client/server encode and decode entry points that
// compose the pure PDU codec with the MBAP ADU header.
package tcp

import "github.com/hootrhino/modbuscore"

// HeaderLength is the MBAP header size: transaction id (2), protocol
// id (2), length (2), unit id (1).
const HeaderLength = 7

// DecoderType selects which PDU-length table Decode consults.
type DecoderType int

const (
	DecodeRequestFrame DecoderType = iota
	DecodeResponseFrame
)

// DecodedFrame is an extracted TCP PDU with its MBAP header fields;
// PDU borrows the original buffer.
type DecodedFrame struct {
	TransactionID uint16
	Unit          uint8
	PDU           []byte
}

// FrameLocation is the span of bytes a successful Decode consumed,
// including any leading noise it resynchronized past.
type FrameLocation struct {
	Start int
	Size  int
}

// RequestPDULen inspects adu[7] (the function code, after the MBAP
// header) and predicts the request PDU length.
func RequestPDULen(adu []byte) (length int, ok bool, err error) {
	if len(adu) < HeaderLength+1 {
		return 0, false, nil
	}
	c := adu[HeaderLength]
	switch {
	case c >= 0x01 && c <= 0x06:
		return 5, true, nil
	case c == 0x07 || c == 0x0B || c == 0x0C || c == 0x11:
		return 1, true, nil
	case c == 0x0F || c == 0x10:
		if len(adu) > HeaderLength+5 {
			return 6 + int(adu[HeaderLength+5]), true, nil
		}
		return 0, false, nil
	case c == 0x16:
		return 7, true, nil
	case c == 0x18:
		return 3, true, nil
	case c == 0x17:
		if len(adu) > HeaderLength+9 {
			return 10 + int(adu[HeaderLength+9]), true, nil
		}
		return 0, false, nil
	default:
		return 0, false, &modbus.CodecError{Kind: modbus.ErrFnCode, Byte: c}
	}
}

// ResponsePDULen inspects adu[7] and predicts the response PDU length.
func ResponsePDULen(adu []byte) (length int, ok bool, err error) {
	if len(adu) < HeaderLength+1 {
		return 0, false, nil
	}
	c := adu[HeaderLength]
	switch {
	case c == 0x01 || c == 0x02 || c == 0x03 || c == 0x04 || c == 0x0C || c == 0x17:
		if len(adu) > HeaderLength+2 {
			return 2 + int(adu[HeaderLength+2]), true, nil
		}
		return 0, false, nil
	case c == 0x05 || c == 0x06 || c == 0x0B || c == 0x0F || c == 0x10:
		return 5, true, nil
	case c == 0x07:
		return 2, true, nil
	case c == 0x16:
		return 7, true, nil
	case c == 0x18:
		if len(adu) > HeaderLength+3 {
			return 3 + int(adu[HeaderLength+2])<<8 + int(adu[HeaderLength+3]), true, nil
		}
		return 0, false, nil
	case c >= 0x81 && c <= 0xAB:
		return 2, true, nil
	default:
		return 0, false, &modbus.CodecError{Kind: modbus.ErrFnCode, Byte: c}
	}
}

// ExtractFrame validates the MBAP header at the front of buf and
// slices out a PDU of the given length: protocol id must be zero and
// the declared length must equal 1 (unit id) + pduLen. ok is false
// when buf is too short for a complete frame yet.
func ExtractFrame(buf []byte, pduLen int) (DecodedFrame, bool, error) {
	need := HeaderLength + pduLen
	if len(buf) < need {
		return DecodedFrame{}, false, nil
	}
	protocolID := uint16(buf[2])<<8 | uint16(buf[3])
	if protocolID != 0 {
		return DecodedFrame{}, false, &modbus.CodecError{Kind: modbus.ErrProtocolNotModbus, Proto: protocolID}
	}
	declaredLen := uint16(buf[4])<<8 | uint16(buf[5])
	expected := uint16(1 + pduLen)
	if declaredLen != expected {
		return DecodedFrame{}, false, &modbus.CodecError{Kind: modbus.ErrLengthMismatch, Expected: expected, Actual: declaredLen}
	}
	txn := uint16(buf[0])<<8 | uint16(buf[1])
	unit := buf[6]
	return DecodedFrame{TransactionID: txn, Unit: unit, PDU: buf[HeaderLength:need]}, true, nil
}

// Decode runs the resynchronizing TCP frame search from
// SPEC_FULL.md §4.6: on a framer-layer error (unclassifiable function
// code, non-zero protocol id, or length mismatch) it drops one
// leading byte and retries, surfacing the last error once the drop
// counter would reach maxFrameLen.
func Decode(kind DecoderType, buf []byte, maxFrameLen int) (DecodedFrame, FrameLocation, bool, error) {
	if maxFrameLen <= 0 {
		maxFrameLen = modbus.DefaultMaxFrameLen
	}
	dropCnt := 0
	for {
		if dropCnt+HeaderLength+1 > len(buf) {
			return DecodedFrame{}, FrameLocation{}, false, nil
		}
		raw := buf[dropCnt:]

		var pduLen int
		var have bool
		var err error
		if kind == DecodeRequestFrame {
			pduLen, have, err = RequestPDULen(raw)
		} else {
			pduLen, have, err = ResponsePDULen(raw)
		}

		if err == nil && have {
			frame, ok, extractErr := ExtractFrame(raw, pduLen)
			if extractErr == nil && ok {
				return frame, FrameLocation{Start: dropCnt, Size: HeaderLength + pduLen}, true, nil
			}
			err = extractErr
			if !ok && extractErr == nil {
				return DecodedFrame{}, FrameLocation{}, false, nil
			}
		} else if err == nil {
			return DecodedFrame{}, FrameLocation{}, false, nil
		}

		if dropCnt+1 >= maxFrameLen {
			return DecodedFrame{}, FrameLocation{}, false, err
		}
		dropCnt++
	}
}
