package regmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hootrhino/modbuscore"
)

// headerFields lists the CSV columns this parser understands,
// mirroring the teacher's CSVRegisterParser header set narrowed to
// what Register carries.
var headerFields = []string{
	"uuid", "tag", "alias", "slave", "function",
	"readAddress", "readQuantity", "dataType", "dataOrder",
	"weight", "frequencyMs",
}

// ParseCSV reads a register table and returns the parsed Registers,
// validating each row's function code against
// modbus.ClassifyFunctionCode. Adapted from the teacher's
// CSVRegisterParser.ParseCSV.
func ParseCSV(r io.Reader) ([]Register, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("regmap: failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("regmap: empty CSV file")
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"uuid", "tag", "slave", "function", "readAddress", "dataType"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("regmap: missing required column %q", required)
		}
	}

	registers := make([]Register, 0, len(records)-1)
	for i, record := range records[1:] {
		reg, err := parseRow(record, col)
		if err != nil {
			return nil, fmt.Errorf("regmap: row %d: %w", i+2, err)
		}
		registers = append(registers, reg)
	}
	return registers, nil
}

func parseRow(record []string, col map[string]int) (Register, error) {
	var reg Register

	field := func(name string) string {
		if idx, ok := col[name]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	reg.UUID = field("uuid")
	if reg.UUID == "" {
		return reg, fmt.Errorf("'uuid' is required")
	}
	reg.Tag = field("tag")
	if reg.Tag == "" {
		return reg, fmt.Errorf("'tag' is required")
	}
	reg.Alias = field("alias")

	slave, err := strconv.ParseUint(field("slave"), 10, 8)
	if err != nil {
		return reg, fmt.Errorf("invalid 'slave': %w", err)
	}
	reg.Slave = uint8(slave)

	fn, err := strconv.ParseUint(field("function"), 10, 8)
	if err != nil {
		return reg, fmt.Errorf("invalid 'function': %w", err)
	}
	fc, err := modbus.ClassifyFunctionCode(uint8(fn))
	if err != nil {
		return reg, fmt.Errorf("invalid 'function': %w", err)
	}
	reg.Function = fc

	addr, err := strconv.ParseUint(field("readAddress"), 10, 16)
	if err != nil {
		return reg, fmt.Errorf("invalid 'readAddress': %w", err)
	}
	reg.ReadAddress = uint16(addr)

	if qty := field("readQuantity"); qty != "" {
		v, err := strconv.ParseUint(qty, 10, 16)
		if err != nil {
			return reg, fmt.Errorf("invalid 'readQuantity': %w", err)
		}
		reg.ReadQuantity = uint16(v)
	} else {
		reg.ReadQuantity = 1
	}

	reg.DataType = field("dataType")
	if reg.DataType == "" {
		return reg, fmt.Errorf("'dataType' is required")
	}

	reg.DataOrder = field("dataOrder")
	if reg.DataOrder == "" {
		reg.DataOrder = "ABCD"
	}

	if w := field("weight"); w != "" {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return reg, fmt.Errorf("invalid 'weight': %w", err)
		}
		reg.Weight = v
	} else {
		reg.Weight = 1
	}

	if f := field("frequencyMs"); f != "" {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return reg, fmt.Errorf("invalid 'frequencyMs': %w", err)
		}
		reg.FrequencyMS = v
	}

	return reg, nil
}
