package modbus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseResponsePDUReadHoldingRegisters(t *testing.T) {
	pdu := []byte{0x03, 0x04, 0x89, 0x02, 0x42, 0xC7}
	resp, err := ParseResponsePDU(pdu)
	require.NoError(t, err)
	require.Equal(t, FuncReadHoldingRegisters, resp.Function)
	require.Equal(t, 2, resp.Registers.Len())
	w0, _ := resp.Registers.Get(0)
	require.Equal(t, uint16(0x8902), w0)
}

func TestParseResponsePDUReadCoilsQuantityIsByteCountTimesEight(t *testing.T) {
	// open question #1: quantity recovered as byte_count * 8
	resp, err := ParseResponsePDU([]byte{0x01, 0x01, 0x0D})
	require.NoError(t, err)
	require.Equal(t, 8, resp.Coils.Len())
}

func TestWriteSingleCoilResponseThreeByteShape(t *testing.T) {
	resp := WriteSingleCoilResponse(0x33)
	require.Equal(t, 3, resp.PDULen())
	buf := make([]byte, 3)
	n, err := resp.Encode(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x00, 0x33}, buf[:n])

	got, err := ParseResponsePDU([]byte{0x05, 0x00, 0x33})
	require.NoError(t, err)
	require.Equal(t, uint16(0x33), got.Value)
}

func TestResponseEncodeDecodeRoundTrip(t *testing.T) {
	rbuf := make([]byte, 4)
	regs, err := NewRegistersFromWords([]uint16{1, 2}, rbuf)
	require.NoError(t, err)
	want := ReadHoldingRegistersResponse(regs)

	out := make([]byte, want.PDULen())
	n, err := want.Encode(out)
	require.NoError(t, err)

	got, err := ParseResponsePDU(out[:n])
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Coils{}, Registers{}, FunctionCode{})); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOnlyResponseEncodeFails(t *testing.T) {
	resp := GetCommEventCounterResponse(0, 42)
	_, err := resp.Encode(make([]byte, 16))
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrUnsupported, ce.Kind)
}

func TestParseResponsePDUReadExceptionStatus(t *testing.T) {
	resp, err := ParseResponsePDU([]byte{0x07, 0x6A})
	require.NoError(t, err)
	require.Equal(t, uint8(0x6A), resp.Status)
}

func TestParseResponsePDUReportServerId(t *testing.T) {
	resp, err := ParseResponsePDU([]byte{0x11, 0x02, 0xAA, 0xBB})
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, resp.Data)
}
