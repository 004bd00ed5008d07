// internal/engine/engine.go
package engine

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/tamzrod/octave-reader/internal/catalog"
	"github.com/tamzrod/octave-reader/internal/codec"
	"github.com/tamzrod/octave-reader/internal/status"
	"github.com/tamzrod/octave-reader/internal/transport"
)

// DefaultSlaveAddress is the meter's Modbus address.
const DefaultSlaveAddress uint8 = 1

// Pending describes the most recent transaction.
// It is overwritten at the start of every request, never merged.
type Pending struct {
	RegistersToRead uint8 // 0 for writes
	Width           codec.Width
	Function        catalog.FunctionID
	LastError       status.Code
}

// Engine runs one blocking transaction at a time against a Transport.
// Concurrent callers are queued behind the one in flight.
type Engine struct {
	mu sync.Mutex

	tr           transport.Transport
	slave        uint8
	pollInterval time.Duration

	pending Pending
	buffers codec.Buffers
}

// Option configures an Engine.
type Option func(*Engine)

// WithSlaveAddress overrides DefaultSlaveAddress.
func WithSlaveAddress(addr uint8) Option {
	return func(e *Engine) { e.slave = addr }
}

// WithPollInterval sets the pause between polls while awaiting a
// response. Zero yields the processor between polls instead.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) { e.pollInterval = d }
}

// New creates an engine over tr.
func New(tr transport.Transport, opts ...Option) *Engine {
	e := &Engine{
		tr:      tr,
		slave:   DefaultSlaveAddress,
		pending: Pending{Width: codec.Width16},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Pending returns the state of the last transaction.
func (e *Engine) Pending() Pending {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// Buffers returns the decode buffers. They hold the last successful
// decode; a failed transaction leaves them as they were.
func (e *Engine) Buffers() codec.Buffers {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffers
}

// Read reads count values of width w starting at address.
// The returned value is nil unless the code is status.Success.
// An unknown width or a zero count is rejected without a transaction.
func (e *Engine) Read(ctx context.Context, address, count uint8, w codec.Width) (codec.Value, status.Code) {
	if !w.Valid() || count == 0 {
		return nil, status.IllegalFunction
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = Pending{
		RegistersToRead: uint8(w.Registers(int(count))),
		Width:           w,
		Function:        catalog.NewFunctionID(catalog.FuncReadInputRegisters, address),
	}

	if !e.tr.StartRead(e.slave, uint16(address), uint16(e.pending.RegistersToRead)) {
		e.pending.LastError = status.ChannelBusy
		return nil, e.pending.LastError
	}

	v, code := e.await(ctx)
	e.pending.LastError = code
	return v, code
}

// Write writes one register.
func (e *Engine) Write(ctx context.Context, address uint8, value uint16) status.Code {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = Pending{
		RegistersToRead: 0,
		Width:           codec.Width16,
		Function:        catalog.NewFunctionID(catalog.FuncWriteSingleRegister, address),
	}

	if !e.tr.StartWrite(e.slave, uint16(address), value) {
		e.pending.LastError = status.ChannelBusy
		return e.pending.LastError
	}

	_, code := e.await(ctx)
	e.pending.LastError = code
	return code
}

// await polls the transport until it produces a response or stops
// waiting. Buffers are only touched on success.
func (e *Engine) await(ctx context.Context) (codec.Value, status.Code) {
	for e.tr.AwaitingResponse() {
		if resp, ok := e.tr.Poll(); ok && resp != nil {
			if resp.HasException() {
				return nil, status.Code(resp.ExceptionCode())
			}
			if e.pending.RegistersToRead == 0 {
				return nil, status.Success
			}
			v := codec.Assemble(e.window(resp), e.pending.Width)
			e.buffers.Store(v)
			return v, status.Success
		}

		if !e.pause(ctx) {
			return nil, status.Timeout
		}
	}
	return nil, status.Timeout
}

func (e *Engine) window(resp transport.Response) []uint16 {
	n := int(e.pending.RegistersToRead)
	if n > len(codec.Sixteen{}) {
		n = len(codec.Sixteen{})
	}
	w := make([]uint16, n)
	for i := range w {
		w[i] = resp.Register(i)
	}
	return w
}

// pause waits one poll interval. It reports false once ctx is done.
func (e *Engine) pause(ctx context.Context) bool {
	if e.pollInterval <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		runtime.Gosched()
		return true
	}

	t := time.NewTimer(e.pollInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
