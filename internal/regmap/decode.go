package regmap

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// DecodedValue is the typed result of decoding a Register's raw
// Value according to its DataType/DataOrder/Weight.
type DecodedValue struct {
	Raw     []byte
	Type    string
	AsType  any
	Float64 float64
}

// DecodeValue decodes r.Value per r.DataType, reordering bytes per
// r.DataOrder and scaling numeric results by r.Weight. Adapted from
// the teacher's DeviceRegister.DecodeValue, trimmed to single values
// (no array/string/bitfield element types) since the demo tooling
// here only needs to prove the codec's output round-trips into a
// usable application value.
func DecodeValue(r Register) (DecodedValue, error) {
	result := DecodedValue{Raw: r.Value, Type: r.DataType}
	if len(r.Value) == 0 {
		return result, fmt.Errorf("regmap: empty value for register %q", r.Tag)
	}

	weight := r.Weight
	if weight == 0 {
		weight = 1
	}

	bytes := reorderBytes(r.Value, r.DataOrder)

	switch strings.ToLower(r.DataType) {
	case "bool":
		v := bytes[0] != 0
		result.AsType = v
		if v {
			result.Float64 = weight
		}
		return result, nil
	case "byte", "uint8":
		if len(bytes) < 1 {
			return result, fmt.Errorf("regmap: %q: need 1 byte for %s", r.Tag, r.DataType)
		}
		result.AsType = bytes[0]
		result.Float64 = float64(bytes[0]) * weight
		return result, nil
	case "int8":
		if len(bytes) < 1 {
			return result, fmt.Errorf("regmap: %q: need 1 byte for %s", r.Tag, r.DataType)
		}
		v := int8(bytes[0])
		result.AsType = v
		result.Float64 = float64(v) * weight
		return result, nil
	case "uint16":
		if len(bytes) < 2 {
			return result, fmt.Errorf("regmap: %q: need 2 bytes for %s", r.Tag, r.DataType)
		}
		v := binary.BigEndian.Uint16(bytes)
		result.AsType = v
		result.Float64 = float64(v) * weight
		return result, nil
	case "int16":
		if len(bytes) < 2 {
			return result, fmt.Errorf("regmap: %q: need 2 bytes for %s", r.Tag, r.DataType)
		}
		v := int16(binary.BigEndian.Uint16(bytes))
		result.AsType = v
		result.Float64 = float64(v) * weight
		return result, nil
	case "uint32":
		if len(bytes) < 4 {
			return result, fmt.Errorf("regmap: %q: need 4 bytes for %s", r.Tag, r.DataType)
		}
		v := binary.BigEndian.Uint32(bytes)
		result.AsType = v
		result.Float64 = float64(v) * weight
		return result, nil
	case "int32":
		if len(bytes) < 4 {
			return result, fmt.Errorf("regmap: %q: need 4 bytes for %s", r.Tag, r.DataType)
		}
		v := int32(binary.BigEndian.Uint32(bytes))
		result.AsType = v
		result.Float64 = float64(v) * weight
		return result, nil
	case "float32":
		if len(bytes) < 4 {
			return result, fmt.Errorf("regmap: %q: need 4 bytes for %s", r.Tag, r.DataType)
		}
		v := math.Float32frombits(binary.BigEndian.Uint32(bytes))
		result.AsType = v
		result.Float64 = float64(v) * weight
		return result, nil
	case "float64":
		if len(bytes) < 8 {
			return result, fmt.Errorf("regmap: %q: need 8 bytes for %s", r.Tag, r.DataType)
		}
		v := math.Float64frombits(binary.BigEndian.Uint64(bytes))
		result.AsType = v
		result.Float64 = v * weight
		return result, nil
	default:
		return result, fmt.Errorf("regmap: %q: unsupported data type %q", r.Tag, r.DataType)
	}
}

// reorderBytes rearranges b per a byte-order tag such as "ABCD"
// (identity) or "DCBA" (full reverse), matching the teacher's
// reorderBytes convention. Unrecognized or length-mismatched orders
// fall back to the bytes as received.
func reorderBytes(b []byte, order string) []byte {
	switch strings.ToUpper(order) {
	case "", "ABCD", "AB", "A":
		return b
	case "DCBA", "BA":
		out := make([]byte, len(b))
		for i, v := range b {
			out[len(b)-1-i] = v
		}
		return out
	case "BADC":
		if len(b) != 4 {
			return b
		}
		return []byte{b[1], b[0], b[3], b[2]}
	case "CDAB":
		if len(b) != 4 {
			return b
		}
		return []byte{b[2], b[3], b[0], b[1]}
	default:
		return b
	}
}
