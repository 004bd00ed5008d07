// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/octave-reader/internal/transport"
)

// deadlineGrace is added on top of the handler timeout before the client
// stops waiting on its own.
const deadlineGrace = 100 * time.Millisecond

// Config is the minimal connection config for one meter.
type Config struct {
	Mode string // "rtu" or "tcp"

	// RTU
	Port     string
	BaudRate int
	DataBits int
	Parity   string // "N", "E", "O"
	StopBits int

	// TCP
	Endpoint string

	SlaveID uint8
	Timeout time.Duration
}

// api is the part of the goburrow client the adapter drives.
type api interface {
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
	WriteSingleRegister(address, value uint16) ([]byte, error)
}

// Client implements transport.Transport over a goburrow Modbus master.
// Each request runs the blocking goburrow call on its own goroutine; the
// engine observes it through AwaitingResponse and Poll.
type Client struct {
	mu sync.Mutex

	api      api
	setSlave func(byte)
	closeFn  func() error
	timeout  time.Duration
	now      func() time.Time

	running  bool
	deadline time.Time
	ready    transport.Response
	lastErr  error
}

// New connects a Modbus master for cfg.Mode.
func New(cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		return nil, errors.New("modbus transport: timeout must be > 0")
	}

	switch strings.ToLower(cfg.Mode) {
	case "tcp":
		if cfg.Endpoint == "" {
			return nil, errors.New("modbus transport: endpoint required for tcp mode")
		}
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.SlaveID
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus transport: connect %s: %w", cfg.Endpoint, err)
		}
		return newClient(modbus.NewClient(h), func(id byte) { h.SlaveId = id }, h.Close, cfg.Timeout), nil

	case "rtu", "":
		if cfg.Port == "" {
			return nil, errors.New("modbus transport: port required for rtu mode")
		}
		h := modbus.NewRTUClientHandler(cfg.Port)
		h.BaudRate = cfg.BaudRate
		h.DataBits = cfg.DataBits
		h.Parity = cfg.Parity
		h.StopBits = cfg.StopBits
		h.SlaveId = cfg.SlaveID
		h.Timeout = cfg.Timeout
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus transport: open %s: %w", cfg.Port, err)
		}
		return newClient(modbus.NewClient(h), func(id byte) { h.SlaveId = id }, h.Close, cfg.Timeout), nil

	default:
		return nil, fmt.Errorf("modbus transport: unknown mode %q", cfg.Mode)
	}
}

func newClient(a api, setSlave func(byte), closeFn func() error, timeout time.Duration) *Client {
	return &Client{
		api:      a,
		setSlave: setSlave,
		closeFn:  closeFn,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Close releases the underlying serial port or TCP connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closeFn == nil {
		return nil
	}
	return c.closeFn()
}

// LastError returns the I/O error that ended the last request without a
// response, if any.
func (c *Client) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ---- transport.Transport ----

func (c *Client) StartRead(slave uint8, address, count uint16) bool {
	return c.start(slave, func() (transport.Response, error) {
		data, err := c.api.ReadInputRegisters(address, count)
		if err != nil {
			return nil, err
		}
		return transport.Registers(unpackRegisters(data)), nil
	})
}

func (c *Client) StartWrite(slave uint8, address, value uint16) bool {
	return c.start(slave, func() (transport.Response, error) {
		if _, err := c.api.WriteSingleRegister(address, value); err != nil {
			return nil, err
		}
		return transport.Registers(nil), nil
	})
}

func (c *Client) AwaitingResponse() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready != nil {
		return true
	}
	return c.running && c.now().Before(c.deadline)
}

func (c *Client) Poll() (transport.Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready == nil {
		return nil, false
	}
	r := c.ready
	c.ready = nil
	return r, true
}

// ---- internal ----

func (c *Client) start(slave uint8, call func() (transport.Response, error)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return false
	}

	// A response nobody polled belongs to an abandoned transaction.
	c.ready = nil
	c.lastErr = nil
	c.running = true
	c.deadline = c.now().Add(c.timeout + deadlineGrace)
	if c.setSlave != nil {
		c.setSlave(slave)
	}

	go c.run(call)
	return true
}

func (c *Client) run(call func() (transport.Response, error)) {
	resp, err := call()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false

	if err == nil {
		c.ready = resp
		return
	}

	var mbErr *modbus.ModbusError
	if errors.As(err, &mbErr) {
		c.ready = transport.Exception(mbErr.ExceptionCode)
		return
	}

	// I/O failure or handler timeout: no response at all.
	c.lastErr = err
}

// unpackRegisters decodes big-endian register words.
func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
