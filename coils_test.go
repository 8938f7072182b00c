package modbus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoilsPackingLSBFirst(t *testing.T) {
	// coil 0 set, coil 3 set -> byte 0 = 0b0000_1001 = 0x09
	buf := make([]byte, 1)
	coils, err := NewCoilsFromBools([]bool{true, false, false, true}, buf)
	require.NoError(t, err)
	require.Equal(t, 4, coils.Len())
	require.Equal(t, byte(0x09), coils.Data()[0])
}

func TestCoilsGetOutOfRange(t *testing.T) {
	coils := NewCoilsView([]byte{0xFF}, 4)
	_, ok := coils.Get(3)
	require.True(t, ok)
	_, ok = coils.Get(4)
	require.False(t, ok)
}

func TestCoilsPackedLenAndEmpty(t *testing.T) {
	coils := NewCoilsView([]byte{0, 0, 0}, 17)
	require.Equal(t, 3, coils.PackedLen())
	require.False(t, coils.IsEmpty())

	empty := NewCoilsView(nil, 0)
	require.True(t, empty.IsEmpty())
	require.Equal(t, 0, empty.PackedLen())
}

func TestCoilsFromBoolsBufferTooSmall(t *testing.T) {
	buf := make([]byte, 1)
	_, err := NewCoilsFromBools(make([]bool, 9), buf)
	require.Error(t, err)
}

func TestCoilsAllRoundTrips(t *testing.T) {
	bools := []bool{true, false, true, true, false, false, true, false, true}
	buf := make([]byte, packedLen(len(bools)))
	coils, err := NewCoilsFromBools(bools, buf)
	require.NoError(t, err)
	require.Equal(t, bools, coils.All())
}
