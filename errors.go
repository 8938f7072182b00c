package modbus

import "fmt"

// ErrKind discriminates the CodecError taxonomy from SPEC_FULL.md §7.
type ErrKind int

const (
	ErrBufferSize ErrKind = iota
	ErrFnCode
	ErrCoilValue
	ErrByteCount
	ErrExceptionCode
	ErrExceptionFnCode
	ErrCRC
	ErrProtocolNotModbus
	ErrLengthMismatch
	ErrUnsupported
	ErrProtocolInvariant
)

// CodecError is the single error type for the whole codec. Kind
// selects which of the optional fields below are populated.
type CodecError struct {
	Kind ErrKind

	Byte     uint8  // ErrFnCode, ErrByteCount, ErrExceptionCode, ErrExceptionFnCode
	Word     uint16 // ErrCoilValue
	Expected uint16 // ErrCRC, ErrLengthMismatch
	Actual   uint16 // ErrCRC, ErrLengthMismatch
	Proto    uint16 // ErrProtocolNotModbus
}

func (e *CodecError) Error() string {
	switch e.Kind {
	case ErrBufferSize:
		return "modbus: buffer too small"
	case ErrFnCode:
		return fmt.Sprintf("modbus: unclassifiable function code 0x%02X", e.Byte)
	case ErrCoilValue:
		return fmt.Sprintf("modbus: invalid coil value 0x%04X", e.Word)
	case ErrByteCount:
		return fmt.Sprintf("modbus: byte count %d exceeds buffer", e.Byte)
	case ErrExceptionCode:
		return fmt.Sprintf("modbus: invalid exception code 0x%02X", e.Byte)
	case ErrExceptionFnCode:
		return fmt.Sprintf("modbus: function byte 0x%02X is not an exception response", e.Byte)
	case ErrCRC:
		return fmt.Sprintf("modbus: CRC mismatch: expected 0x%04X, got 0x%04X", e.Expected, e.Actual)
	case ErrProtocolNotModbus:
		return fmt.Sprintf("modbus: non-zero protocol identifier 0x%04X", e.Proto)
	case ErrLengthMismatch:
		return fmt.Sprintf("modbus: MBAP length %d does not match expected %d", e.Actual, e.Expected)
	case ErrUnsupported:
		return "modbus: operation not supported for this PDU variant"
	case ErrProtocolInvariant:
		return "modbus: frame passed integrity checking but its PDU failed to parse"
	default:
		return "modbus: codec error"
	}
}

// Is supports errors.Is against the exported sentinels below: two
// CodecErrors are equal for errors.Is purposes if they share a Kind.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values usable with errors.Is(err, modbus.ErrXxxSentinel).
var (
	ErrBufferSizeSentinel  = &CodecError{Kind: ErrBufferSize}
	ErrUnsupportedSentinel = &CodecError{Kind: ErrUnsupported}
)
