// Package regmap adapts a CSV-described set of Modbus registers into
// read requests built with the root codec, and polls them on a
// schedule against a caller-supplied transport. It is demo/reference
// tooling layered on top of the codec, not part of the codec itself.
package regmap

import (
	"fmt"

	"github.com/hootrhino/modbuscore"
)

// Register describes one polled Modbus value: where to read it from,
// how to decode the raw registers/coils into a typed value, and how
// often to poll it. Adapted from the teacher's DeviceRegister, with
// the function code now validated against modbus.ClassifyFunctionCode
// instead of carried as a bare byte.
type Register struct {
	UUID         string
	Tag          string
	Alias        string
	Slave        uint8
	Function     modbus.FunctionCode
	ReadAddress  uint16
	ReadQuantity uint16
	DataType     string
	DataOrder    string
	Weight       float64
	FrequencyMS  uint64

	Value  []byte
	Status string
}

// BuildRequest translates a Register into the read request its
// function code names. Only the four read operations are meaningful
// here; anything else is a configuration error.
func BuildRequest(r Register) (modbus.Request, error) {
	switch r.Function {
	case modbus.FuncReadCoils:
		return modbus.ReadCoilsRequest(r.ReadAddress, r.ReadQuantity), nil
	case modbus.FuncReadDiscreteInputs:
		return modbus.ReadDiscreteInputsRequest(r.ReadAddress, r.ReadQuantity), nil
	case modbus.FuncReadHoldingRegisters:
		return modbus.ReadHoldingRegistersRequest(r.ReadAddress, r.ReadQuantity), nil
	case modbus.FuncReadInputRegisters:
		return modbus.ReadInputRegistersRequest(r.ReadAddress, r.ReadQuantity), nil
	default:
		return modbus.Request{}, fmt.Errorf("regmap: register %q: function %s is not a supported read operation", r.Tag, r.Function)
	}
}

// StoreResponse copies the decoded payload of resp into r.Value as
// raw bytes, ready for DecodeValue. Coil responses are expanded one
// byte per bit so DecodeValue's "bool" path has a stable shape to
// work from; register responses are copied big-endian.
func StoreResponse(r *Register, resp modbus.Response) error {
	switch r.Function {
	case modbus.FuncReadCoils, modbus.FuncReadDiscreteInputs:
		bits := resp.Coils.All()
		buf := make([]byte, len(bits))
		for i, b := range bits {
			if b {
				buf[i] = 1
			}
		}
		r.Value = buf
	case modbus.FuncReadHoldingRegisters, modbus.FuncReadInputRegisters:
		words := resp.Registers.All()
		buf := make([]byte, len(words)*2)
		for i, w := range words {
			buf[i*2] = byte(w >> 8)
			buf[i*2+1] = byte(w)
		}
		r.Value = buf
	default:
		return fmt.Errorf("regmap: register %q: function %s has no response payload mapping", r.Tag, r.Function)
	}
	r.Status = "OK"
	return nil
}
