// internal/transport/modbus/client_test.go
package modbus

import (
	"errors"
	"testing"
	"time"

	"github.com/goburrow/modbus"
)

type fakeAPI struct {
	release chan struct{}

	data []byte
	err  error

	gotAddr  uint16
	gotQty   uint16
	gotValue uint16
}

func (f *fakeAPI) ReadInputRegisters(address, quantity uint16) ([]byte, error) {
	f.gotAddr, f.gotQty = address, quantity
	if f.release != nil {
		<-f.release
	}
	return f.data, f.err
}

func (f *fakeAPI) WriteSingleRegister(address, value uint16) ([]byte, error) {
	f.gotAddr, f.gotValue = address, value
	if f.release != nil {
		<-f.release
	}
	return []byte{byte(address >> 8), byte(address), byte(value >> 8), byte(value)}, f.err
}

func waitPoll(t *testing.T, c *Client) (bool, []uint16, uint8, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for c.AwaitingResponse() {
		if r, ok := c.Poll(); ok {
			var regs []uint16
			for i := 0; i < 4; i++ {
				regs = append(regs, r.Register(i))
			}
			return true, regs, r.ExceptionCode(), r.HasException()
		}
		if time.Now().After(deadline) {
			t.Fatalf("client never finished")
		}
		time.Sleep(time.Millisecond)
	}
	return false, nil, 0, false
}

func TestClient_ReadDecodesRegisters(t *testing.T) {
	f := &fakeAPI{data: []byte{0x12, 0x34, 0xAB, 0xCD}}
	var slave byte
	c := newClient(f, func(id byte) { slave = id }, nil, time.Second)

	if !c.StartRead(7, 0x36, 2) {
		t.Fatalf("StartRead refused on idle client")
	}

	got, regs, _, exc := waitPoll(t, c)
	if !got || exc {
		t.Fatalf("expected plain response, got=%v exception=%v", got, exc)
	}
	if regs[0] != 0x1234 || regs[1] != 0xABCD || regs[2] != 0 {
		t.Fatalf("registers: %04X", regs)
	}
	if slave != 7 || f.gotAddr != 0x36 || f.gotQty != 2 {
		t.Fatalf("request: slave=%d addr=%d qty=%d", slave, f.gotAddr, f.gotQty)
	}
}

func TestClient_BusyWhileRunning(t *testing.T) {
	f := &fakeAPI{release: make(chan struct{})}
	c := newClient(f, nil, nil, time.Second)

	if !c.StartWrite(1, 0x07, 4) {
		t.Fatalf("first StartWrite refused")
	}
	if c.StartRead(1, 0x00, 1) {
		t.Fatalf("second request accepted while busy")
	}

	close(f.release)
	if got, _, _, _ := waitPoll(t, c); !got {
		t.Fatalf("write produced no response")
	}
	if f.gotValue != 4 {
		t.Fatalf("value: got=%d want=4", f.gotValue)
	}
}

func TestClient_ExceptionResponse(t *testing.T) {
	f := &fakeAPI{err: &modbus.ModbusError{FunctionCode: 0x84, ExceptionCode: 2}}
	c := newClient(f, nil, nil, time.Second)

	c.StartRead(1, 0x99, 1)

	got, _, code, exc := waitPoll(t, c)
	if !got || !exc || code != 2 {
		t.Fatalf("got=%v exception=%v code=%d", got, exc, code)
	}
}

func TestClient_IOErrorStopsWaiting(t *testing.T) {
	f := &fakeAPI{err: errors.New("serial: timeout")}
	c := newClient(f, nil, nil, time.Second)

	c.StartRead(1, 0x00, 1)

	if got, _, _, _ := waitPoll(t, c); got {
		t.Fatalf("I/O error must not produce a response")
	}
	if c.LastError() == nil {
		t.Fatalf("LastError not recorded")
	}
}

func TestClient_DeadlineStopsWaiting(t *testing.T) {
	f := &fakeAPI{release: make(chan struct{})}
	defer close(f.release)

	now := time.Unix(0, 0)
	c := newClient(f, nil, nil, time.Second)
	c.now = func() time.Time { return now }

	c.StartRead(1, 0x00, 1)
	if !c.AwaitingResponse() {
		t.Fatalf("should be waiting before the deadline")
	}

	now = now.Add(time.Second + deadlineGrace)
	if c.AwaitingResponse() {
		t.Fatalf("should stop waiting at the deadline")
	}
	if c.StartRead(1, 0x00, 1) {
		t.Fatalf("call still running, new request must be refused")
	}
}
