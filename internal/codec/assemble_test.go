// internal/codec/assemble_test.go
package codec

import (
	"math"
	"testing"
)

func TestAssemble32(t *testing.T) {
	window := []uint16{0x0001, 0x0002}

	s, ok := Assemble(window, WidthI32).(Signed32)
	if !ok {
		t.Fatalf("width -32 did not produce Signed32")
	}
	if s != 0x00010002 {
		t.Fatalf("signed: got=0x%08X want=0x00010002", int32(s))
	}

	u, ok := Assemble(window, WidthU32).(Unsigned32)
	if !ok {
		t.Fatalf("width 32 did not produce Unsigned32")
	}
	if u != 0x00010002 {
		t.Fatalf("unsigned: got=0x%08X want=0x00010002", uint32(u))
	}
}

func TestAssemble32_HighBitSign(t *testing.T) {
	window := []uint16{0xFFFF, 0xFFFE}

	if s := Assemble(window, WidthI32).(Signed32); s != -2 {
		t.Fatalf("signed: got=%d want=-2", s)
	}
	if u := Assemble(window, WidthU32).(Unsigned32); u != 0xFFFFFFFE {
		t.Fatalf("unsigned: got=0x%08X want=0xFFFFFFFE", uint32(u))
	}
}

func TestAssemble64_ByteInterleave(t *testing.T) {
	// [A|B C|D E|F G|H] -> 0xHGFEDCBA
	window := []uint16{0x0102, 0x0304, 0x0506, 0x0708}

	f, ok := Assemble(window, WidthF64).(Float64)
	if !ok {
		t.Fatalf("width -64 did not produce Float64")
	}

	got := math.Float64bits(float64(f))
	const want uint64 = 0x0807060504030201
	if got != want {
		t.Fatalf("bits: got=0x%016X want=0x%016X", got, want)
	}
}

func TestAssemble64_RoundTrip(t *testing.T) {
	values := []float64{
		0,
		1,
		-1,
		123456.789,
		-0.000123,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.Inf(1),
	}

	for _, v := range values {
		regs := Encode64(v)
		got := Assemble(regs[:], WidthF64).(Float64)
		if math.Float64bits(float64(got)) != math.Float64bits(v) {
			t.Fatalf("round trip %v: got=%v regs=%04X", v, float64(got), regs)
		}
	}
}

func TestAssemble16_ZeroFillsUnusedSlots(t *testing.T) {
	window := []uint16{'1', '2', '3', 0xFFFF}

	s := Assemble(window, Width16).(Sixteen)
	if s[0] != '1' || s[1] != '2' || s[2] != '3' {
		t.Fatalf("unexpected leading slots: %v", s[:3])
	}
	if s[3] != -1 {
		t.Fatalf("slot 3: got=%d want=-1", s[3])
	}
	for i := len(window); i < len(s); i++ {
		if s[i] != 0 {
			t.Fatalf("slot %d not cleared: %d", i, s[i])
		}
	}
}

func TestAssemble_ShortWindowReadsZero(t *testing.T) {
	if u := Assemble([]uint16{0x1234}, WidthU32).(Unsigned32); u != 0x12340000 {
		t.Fatalf("got=0x%08X want=0x12340000", uint32(u))
	}
}

func TestBuffers_StoreClearsOtherSlots(t *testing.T) {
	var b Buffers

	b.Store(Sixteen{1, 2, 3})
	b.Store(Unsigned32(7))

	if b.Uint32 != 7 {
		t.Fatalf("uint32 slot: got=%d want=7", b.Uint32)
	}
	if b.Int16 != ([16]int16{}) || b.Int32 != 0 || b.Float64 != 0 {
		t.Fatalf("other slots not cleared: %+v", b)
	}

	b.Store(nil)
	if b.Uint32 != 7 {
		t.Fatalf("nil store must not touch buffers")
	}
}

func TestWidthRegisters(t *testing.T) {
	cases := []struct {
		w     Width
		count int
		want  int
	}{
		{Width16, 1, 1},
		{Width16, 16, 16},
		{WidthU32, 1, 2},
		{WidthI32, 1, 2},
		{WidthF64, 1, 4},
	}

	for _, c := range cases {
		if got := c.w.Registers(c.count); got != c.want {
			t.Fatalf("%v x%d: got=%d want=%d", c.w, c.count, got, c.want)
		}
	}
}
