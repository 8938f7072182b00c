package rtu

import (
	"testing"

	"github.com/hootrhino/modbuscore"
	"github.com/stretchr/testify/require"
)

// TestDecodeResponseDropsInvalidBytes mirrors
// decode_rtu_response_drop_invalid_bytes: two bytes of noise precede
// a well-formed ReadHoldingRegisters response for slave 0x01.
func TestDecodeResponseDropsInvalidBytes(t *testing.T) {
	resp := modbus.ReadHoldingRegistersResponse(modbus.NewRegistersView([]byte{0x89, 0x02, 0xC7, 0x00, 0x9D, 0x03}, 2))
	pdu := make([]byte, resp.PDULen())
	n, err := resp.Encode(pdu)
	require.NoError(t, err)

	adu := append([]byte{0x01}, pdu[:n]...)
	crc := CRC16(adu)
	adu = append(adu, byte(crc>>8), byte(crc))

	buf := append([]byte{0x42, 0x43}, adu...)

	frame, loc, ok, err := Decode(DecodeResponseFrame, buf, modbus.DefaultMaxFrameLen)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint8(0x01), frame.Slave)
	require.Equal(t, 2, loc.Start)
	require.Equal(t, len(adu), loc.Size)
}

func TestDecodeIncompleteBufferIsNotAnError(t *testing.T) {
	_, _, ok, err := Decode(DecodeResponseFrame, []byte{0x01, 0x03}, modbus.DefaultMaxFrameLen)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDecodeGivesUpAtMaxFrameLen(t *testing.T) {
	noise := make([]byte, modbus.DefaultMaxFrameLen+8)
	for i := range noise {
		noise[i] = 0xFF
	}
	_, _, ok, err := Decode(DecodeResponseFrame, noise, modbus.DefaultMaxFrameLen)
	require.False(t, ok)
	require.Error(t, err)
}

func TestExtractFrameRejectsBadCRC(t *testing.T) {
	buf := []byte{0x01, 0x03, 0x02, 0x00, 0x01, 0x00, 0x00}
	_, ok, err := ExtractFrame(buf, 4)
	require.False(t, ok)
	require.Error(t, err)
	var ce *modbus.CodecError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, modbus.ErrCRC, ce.Kind)
}
