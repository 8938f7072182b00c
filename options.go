package modbus

// DefaultMaxFrameLen is the resynchronization search cap from
// SPEC_FULL.md §4.5/§4.6/§5: "a MODBUS request needs a maximum of
// 256 bytes + the MBAP header size" (Modbus Messaging on TCP/IP
// Implementation Guide, p.18).
const DefaultMaxFrameLen = 256

// Options bundles a Logger and a resync cap with their defaults. The
// core codec (this package) takes none: it is a pure function of
// its inputs, per SPEC_FULL.md §5. The rtu/ and tcp/ façades do not
// take an Options value either: they accept the resync cap as a
// plain maxFrameLen argument (zero or less means DefaultMaxFrameLen)
// and do no logging.
type Options struct {
	// Logger is the structured logger to use. Nil means NoopLogger.
	Logger Logger
	// MaxFrameLen bounds the drop-and-retry resync search. Zero
	// means DefaultMaxFrameLen.
	MaxFrameLen int
}

// Log returns o.Logger, or NoopLogger if unset.
func (o Options) Log() Logger {
	return loggerOrNoop(o.Logger)
}

// MaxFrame returns o.MaxFrameLen, or DefaultMaxFrameLen if unset.
func (o Options) MaxFrame() int {
	if o.MaxFrameLen <= 0 {
		return DefaultMaxFrameLen
	}
	return o.MaxFrameLen
}
