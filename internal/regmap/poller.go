package regmap

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hootrhino/modbuscore"
)

// Transport performs one request/response exchange for a given
// slave/unit id. rtu.EncodeRequest+DecodeResponse or their tcp
// counterparts sit behind this seam; regmap itself never touches a
// wire.
type Transport interface {
	Do(ctx context.Context, slave uint8, req modbus.Request) (modbus.Response, error)
}

// OnDataFunc receives a freshly polled, decoded register.
type OnDataFunc func(Register, DecodedValue)

// OnErrorFunc receives a polling error for one register.
type OnErrorFunc func(Register, error)

// Poller runs each Register on its own ticker, reading it through
// Transport and reporting results via callbacks. Adapted from the
// teacher's RegisterScheduler/RegisterStream pair, collapsed into one
// type since the per-register goroutine-per-ticker shape replaces the
// teacher's separate read-then-stream stages.
type Poller struct {
	transport Transport
	onData    atomic.Value
	onError   atomic.Value
}

// NewPoller creates a Poller that issues reads through transport.
func NewPoller(transport Transport) *Poller {
	return &Poller{transport: transport}
}

// OnData installs the callback invoked for every successfully decoded
// poll.
func (p *Poller) OnData(fn OnDataFunc) {
	p.onData.Store(fn)
}

// OnError installs the callback invoked when a read or decode fails.
func (p *Poller) OnError(fn OnErrorFunc) {
	p.onError.Store(fn)
}

// Run polls every register in registers at its own FrequencyMS
// interval until ctx is cancelled. A zero FrequencyMS defaults to one
// second.
func (p *Poller) Run(ctx context.Context, registers []Register) {
	var wg sync.WaitGroup
	for _, reg := range registers {
		wg.Add(1)
		go func(reg Register) {
			defer wg.Done()
			p.pollOne(ctx, reg)
		}(reg)
	}
	wg.Wait()
}

func (p *Poller) pollOne(ctx context.Context, reg Register) {
	interval := time.Duration(reg.FrequencyMS) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.pollOnce(ctx, reg)
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context, reg Register) {
	req, err := BuildRequest(reg)
	if err != nil {
		p.reportError(reg, err)
		return
	}

	resp, err := p.transport.Do(ctx, reg.Slave, req)
	if err != nil {
		reg.Status = "ERROR:" + err.Error()
		p.reportError(reg, err)
		return
	}

	if err := StoreResponse(&reg, resp); err != nil {
		p.reportError(reg, err)
		return
	}

	decoded, err := DecodeValue(reg)
	if err != nil {
		p.reportError(reg, err)
		return
	}

	if fn, ok := p.onData.Load().(OnDataFunc); ok && fn != nil {
		fn(reg, decoded)
	}
}

func (p *Poller) reportError(reg Register, err error) {
	if fn, ok := p.onError.Load().(OnErrorFunc); ok && fn != nil {
		fn(reg, err)
	}
}
