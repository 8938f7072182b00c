// Package modbuslog adapts a *zap.SugaredLogger to the root
// modbus.Logger interface, grounded on the pack's zap usage
// (rinzlerlabs-gomodbus, KevinKickass-OpenMachineCore).
package modbuslog

import (
	"github.com/hootrhino/modbuscore"
	"go.uber.org/zap"
)

// Zap wraps a *zap.SugaredLogger as a modbus.Logger.
type Zap struct {
	sugar *zap.SugaredLogger
}

// New wraps logger, or returns modbus.NoopLogger{} if logger is nil.
func New(logger *zap.Logger) modbus.Logger {
	if logger == nil {
		return modbus.NoopLogger{}
	}
	return Zap{sugar: logger.Sugar()}
}

func (z Zap) Warnw(msg string, keysAndValues ...interface{}) {
	z.sugar.Warnw(msg, keysAndValues...)
}

func (z Zap) Errorw(msg string, keysAndValues ...interface{}) {
	z.sugar.Errorw(msg, keysAndValues...)
}
