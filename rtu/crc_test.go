package rtu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC16PublishedVectors(t *testing.T) {
	require.Equal(t, uint16(0xB663), CRC16([]byte{0x01, 0x03, 0x08, 0x2B, 0x00, 0x02}))
	require.Equal(t, uint16(0xFBF9), CRC16([]byte{0x01, 0x03, 0x04, 0x00, 0x20, 0x00, 0x00}))
}

func TestCRC16MatchesDirectBitLoop(t *testing.T) {
	for _, data := range [][]byte{
		{0x12, 0x06, 0x22, 0x22, 0xAB, 0xCD},
		{0x01, 0x03, 0x08, 0x2B, 0x00, 0x02},
		{},
		{0x00},
	} {
		require.Equal(t, crc16Direct(data), CRC16(data))
	}
}
