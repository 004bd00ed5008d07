// internal/transport/transport.go
package transport

//go:generate mockgen -source=transport.go -destination=mock_transport/mock_transport.go

// Transport is the Modbus master capability set consumed by the engine.
// At most one request is outstanding; Start* returns false while busy.
type Transport interface {
	StartRead(slave uint8, address, count uint16) bool
	StartWrite(slave uint8, address, value uint16) bool

	// AwaitingResponse stays true until a response is polled or the
	// transport's own deadline passes.
	AwaitingResponse() bool

	// Poll hands over a finished response exactly once.
	Poll() (Response, bool)
}

// Response is one reply from the device.
type Response interface {
	HasException() bool
	ExceptionCode() uint8
	Register(i int) uint16
}

// Registers is a plain Response carrying register words.
type Registers []uint16

func (r Registers) HasException() bool  { return false }
func (r Registers) ExceptionCode() uint8 { return 0 }

// Register returns word i, or zero past the end.
func (r Registers) Register(i int) uint16 {
	if i < 0 || i >= len(r) {
		return 0
	}
	return r[i]
}

// Exception is a Response carrying a device exception code.
type Exception uint8

func (e Exception) HasException() bool   { return true }
func (e Exception) ExceptionCode() uint8 { return uint8(e) }
func (e Exception) Register(int) uint16  { return 0 }
