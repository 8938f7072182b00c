package rtu

import "github.com/hootrhino/modbuscore"

// DecoderType selects which PDU-length table Decode consults.
type DecoderType int

const (
	DecodeRequestFrame DecoderType = iota
	DecodeResponseFrame
)

// DecodedFrame is an extracted RTU PDU still framed by its slave
// address; pdu borrows buf.
type DecodedFrame struct {
	Slave uint8
	PDU   []byte
}

// FrameLocation is the span of bytes a successful Decode consumed,
// including any leading noise it resynchronized past.
type FrameLocation struct {
	Start int
	Size  int
}

// RequestPDULen inspects adu[1] (the function code) and predicts the
// request PDU length. ok is false when the prefix is too short to
// decide for variable-length PDUs.
func RequestPDULen(adu []byte) (length int, ok bool, err error) {
	if len(adu) < 2 {
		return 0, false, nil
	}
	c := adu[1]
	switch {
	case c >= 0x01 && c <= 0x06:
		return 5, true, nil
	case c == 0x07 || c == 0x0B || c == 0x0C || c == 0x11:
		return 1, true, nil
	case c == 0x0F || c == 0x10:
		if len(adu) > 4 {
			return 6 + int(adu[4]), true, nil
		}
		return 0, false, nil
	case c == 0x16:
		return 7, true, nil
	case c == 0x18:
		return 3, true, nil
	case c == 0x17:
		if len(adu) > 10 {
			return 10 + int(adu[10]), true, nil
		}
		return 0, false, nil
	default:
		return 0, false, &modbus.CodecError{Kind: modbus.ErrFnCode, Byte: c}
	}
}

// ResponsePDULen inspects adu[1] and predicts the response PDU length.
func ResponsePDULen(adu []byte) (length int, ok bool, err error) {
	if len(adu) < 2 {
		return 0, false, nil
	}
	c := adu[1]
	switch {
	case c == 0x01 || c == 0x02 || c == 0x03 || c == 0x04 || c == 0x0C || c == 0x17:
		if len(adu) > 2 {
			return 2 + int(adu[2]), true, nil
		}
		return 0, false, nil
	case c == 0x05 || c == 0x06 || c == 0x0B || c == 0x0F || c == 0x10:
		return 5, true, nil
	case c == 0x07:
		return 2, true, nil
	case c == 0x16:
		return 7, true, nil
	case c == 0x18:
		if len(adu) > 3 {
			return 3 + int(adu[2])<<8 + int(adu[3]), true, nil
		}
		return 0, false, nil
	case c >= 0x81 && c <= 0xAB:
		return 2, true, nil
	default:
		return 0, false, &modbus.CodecError{Kind: modbus.ErrFnCode, Byte: c}
	}
}

// ExtractFrame validates and slices out a complete RTU ADU of the
// given PDU length from buf, verifying the trailing CRC. ok is false
// when buf is too short (incomplete frame, not an error).
func ExtractFrame(buf []byte, pduLen int) (DecodedFrame, bool, error) {
	aduLen := 1 + pduLen
	if len(buf) < aduLen+2 {
		return DecodedFrame{}, false, nil
	}
	expected := uint16(buf[aduLen])<<8 | uint16(buf[aduLen+1])
	actual := CRC16(buf[:aduLen])
	if expected != actual {
		return DecodedFrame{}, false, &modbus.CodecError{Kind: modbus.ErrCRC, Expected: expected, Actual: actual}
	}
	return DecodedFrame{Slave: buf[0], PDU: buf[1:aduLen]}, true, nil
}

// Decode runs the resynchronizing RTU frame search described in
// SPEC_FULL.md §4.5: on a framer-layer error (unclassifiable
// function code or bad CRC) it drops one leading byte and retries
// until the drop counter would reach maxFrameLen, at which point the
// last error is surfaced. If the buffer runs out first, Decode
// reports an incomplete frame (not ok, nil error).
func Decode(kind DecoderType, buf []byte, maxFrameLen int) (DecodedFrame, FrameLocation, bool, error) {
	if maxFrameLen <= 0 {
		maxFrameLen = modbus.DefaultMaxFrameLen
	}
	dropCnt := 0
	for {
		if dropCnt+2 > len(buf) {
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
				return frame, FrameLocation{Start: dropCnt, Size: pduLen + 3}, true, nil
			}
			err = extractErr
			if !ok && extractErr == nil {
				return DecodedFrame{}, FrameLocation{}, false, nil
			}
		} else if err == nil {
			// incomplete prefix, need more bytes
			return DecodedFrame{}, FrameLocation{}, false, nil
		}

		if dropCnt+1 >= maxFrameLen {
			return DecodedFrame{}, FrameLocation{}, false, err
		}
		dropCnt++
	}
}
