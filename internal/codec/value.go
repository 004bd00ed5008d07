// internal/codec/value.go
package codec

// Value is the decoded content of one read transaction.
// Exactly one of Sixteen, Signed32, Unsigned32 or Float64.
type Value interface {
	Width() Width
	isValue()
}

// Sixteen holds up to 16 raw 16-bit registers. Unused slots are zero.
type Sixteen [16]int16

// Signed32 is a 32-bit value read with width tag -32.
type Signed32 int32

// Unsigned32 is a 32-bit value read with width tag 32.
type Unsigned32 uint32

// Float64 is a 64-bit IEEE-754 value read with width tag -64.
type Float64 float64

func (Sixteen) Width() Width    { return Width16 }
func (Signed32) Width() Width   { return WidthI32 }
func (Unsigned32) Width() Width { return WidthU32 }
func (Float64) Width() Width    { return WidthF64 }

func (Sixteen) isValue()    {}
func (Signed32) isValue()   {}
func (Unsigned32) isValue() {}
func (Float64) isValue()    {}

// Buffers is the shared set of typed decode slots.
// After Store, only the slot matching the value's width is non-zero.
type Buffers struct {
	Int16   [16]int16
	Int32   int32
	Uint32  uint32
	Float64 float64
}

// Store projects v onto the buffers and clears every other slot.
// A nil value leaves the buffers untouched.
func (b *Buffers) Store(v Value) {
	if v == nil {
		return
	}
	*b = Buffers{}
	switch x := v.(type) {
	case Sixteen:
		b.Int16 = x
	case Signed32:
		b.Int32 = int32(x)
	case Unsigned32:
		b.Uint32 = uint32(x)
	case Float64:
		b.Float64 = float64(x)
	}
}
