package modbuslog

import (
	"testing"

	"github.com/hootrhino/modbuscore"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewWrapsZapLogger(t *testing.T) {
	var l modbus.Logger = New(zaptest.NewLogger(t))
	require.NotNil(t, l)
	l.Warnw("test warning", "key", "value")
	l.Errorw("test error", "key", "value")
}

func TestNewNilFallsBackToNoop(t *testing.T) {
	l := New(nil)
	_, ok := l.(modbus.NoopLogger)
	require.True(t, ok)
}
