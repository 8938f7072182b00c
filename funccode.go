package modbus

// FunctionCode identifies the operation carried by a PDU. Named
// variants cover the function codes this codec understands; Custom
// is the escape hatch for everything else below the exception bit.
type FunctionCode struct {
	name   string
	value  uint8
	custom bool
}

// Named function codes, byte values per the Modbus application
// protocol specification.
var (
	FuncReadCoils                  = FunctionCode{name: "ReadCoils", value: 0x01}
	FuncReadDiscreteInputs         = FunctionCode{name: "ReadDiscreteInputs", value: 0x02}
	FuncReadHoldingRegisters       = FunctionCode{name: "ReadHoldingRegisters", value: 0x03}
	FuncReadInputRegisters         = FunctionCode{name: "ReadInputRegisters", value: 0x04}
	FuncWriteSingleCoil            = FunctionCode{name: "WriteSingleCoil", value: 0x05}
	FuncWriteSingleRegister        = FunctionCode{name: "WriteSingleRegister", value: 0x06}
	FuncReadExceptionStatus        = FunctionCode{name: "ReadExceptionStatus", value: 0x07}
	FuncDiagnostics                = FunctionCode{name: "Diagnostics", value: 0x08}
	FuncGetCommEventCounter        = FunctionCode{name: "GetCommEventCounter", value: 0x0B}
	FuncGetCommEventLog            = FunctionCode{name: "GetCommEventLog", value: 0x0C}
	FuncWriteMultipleCoils         = FunctionCode{name: "WriteMultipleCoils", value: 0x0F}
	FuncWriteMultipleRegisters     = FunctionCode{name: "WriteMultipleRegisters", value: 0x10}
	FuncReportServerId             = FunctionCode{name: "ReportServerId", value: 0x11}
	FuncMaskWriteRegister          = FunctionCode{name: "MaskWriteRegister", value: 0x16}
	FuncReadWriteMultipleRegisters = FunctionCode{name: "ReadWriteMultipleRegisters", value: 0x17}
)

var namedFunctionCodes = [...]FunctionCode{
	FuncReadCoils,
	FuncReadDiscreteInputs,
	FuncReadHoldingRegisters,
	FuncReadInputRegisters,
	FuncWriteSingleCoil,
	FuncWriteSingleRegister,
	FuncReadExceptionStatus,
	FuncDiagnostics,
	FuncGetCommEventCounter,
	FuncGetCommEventLog,
	FuncWriteMultipleCoils,
	FuncWriteMultipleRegisters,
	FuncReportServerId,
	FuncMaskWriteRegister,
	FuncReadWriteMultipleRegisters,
}

// CustomFunctionCode wraps a function-code byte with no named
// meaning in this codec. Only valid for c < 0x80.
func CustomFunctionCode(c uint8) FunctionCode {
	return FunctionCode{name: "Custom", value: c, custom: true}
}

// ClassifyFunctionCode maps a PDU leading byte to a FunctionCode.
// Classification is total for c < 0x80; bytes >= 0x80 belong to
// exception responses and are rejected here.
func ClassifyFunctionCode(c uint8) (FunctionCode, error) {
	if c >= 0x80 {
		return FunctionCode{}, &CodecError{Kind: ErrFnCode, Byte: c}
	}
	for _, fc := range namedFunctionCodes {
		if fc.value == c {
			return fc, nil
		}
	}
	return CustomFunctionCode(c), nil
}

// Value returns the wire byte for this function code.
func (f FunctionCode) Value() uint8 { return f.value }

// IsCustom reports whether this is the Custom escape hatch.
func (f FunctionCode) IsCustom() bool { return f.custom }

// String returns the variant name, or "Custom(0xNN)" for unnamed codes.
func (f FunctionCode) String() string {
	if !f.custom {
		return f.name
	}
	return "Custom(" + hexByte(f.value) + ")"
}

func hexByte(b uint8) string {
	const digits = "0123456789ABCDEF"
	return "0x" + string([]byte{digits[b>>4], digits[b&0xF]})
}
