// internal/codec/width.go
package codec

import "fmt"

// Width is the signed width tag of a decoded value.
// The magnitude is the bit width, a negative sign marks a signed value.
// 16-bit values are always treated as signed registers.
type Width int8

const (
	Width16  Width = 16
	WidthU32 Width = 32
	WidthI32 Width = -32
	WidthF64 Width = -64
)

// Bits returns the bit width without the sign.
func (w Width) Bits() int {
	if w < 0 {
		return int(-w)
	}
	return int(w)
}

// Registers returns how many 16-bit registers count values occupy.
func (w Width) Registers(count int) int {
	return count * w.Bits() / 16
}

// Valid reports whether w is one of the four known tags.
func (w Width) Valid() bool {
	switch w {
	case Width16, WidthU32, WidthI32, WidthF64:
		return true
	}
	return false
}

func (w Width) String() string {
	switch w {
	case Width16:
		return "int16"
	case WidthU32:
		return "uint32"
	case WidthI32:
		return "int32"
	case WidthF64:
		return "float64"
	default:
		return fmt.Sprintf("width(%d)", int8(w))
	}
}
