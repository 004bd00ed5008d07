// internal/codec/assemble.go
package codec

import "math"

// Assemble builds a typed value out of the raw register window of one
// response. Registers missing from a short window read as zero.
//
// Layouts, per the meter memory map:
//
//	16:      one register per slot, up to 16 slots
//	32, -32: r0 holds the high word, r1 the low word
//	-64:     register r contributes its high byte at bit 16*r and its low
//	         byte at bit 16*r+8, i.e. [A|B C|D E|F G|H] -> 0xHGFEDCBA
func Assemble(window []uint16, w Width) Value {
	at := func(i int) uint16 {
		if i < len(window) {
			return window[i]
		}
		return 0
	}

	switch w {
	case Width16:
		var out Sixteen
		for i := 0; i < len(out) && i < len(window); i++ {
			out[i] = int16(window[i])
		}
		return out

	case WidthU32:
		return Unsigned32(uint32(at(0))<<16 | uint32(at(1)))

	case WidthI32:
		return Signed32(int32(uint32(at(0))<<16 | uint32(at(1))))

	case WidthF64:
		var bits uint64
		for r := 0; r < 4; r++ {
			reg := at(r)
			bits |= uint64(reg>>8) << (16 * r)
			bits |= uint64(reg&0xFF) << (16*r + 8)
		}
		return Float64(math.Float64frombits(bits))
	}

	return nil
}

// Encode64 is the inverse of the -64 layout of Assemble.
func Encode64(v float64) [4]uint16 {
	bits := math.Float64bits(v)

	var regs [4]uint16
	for r := 0; r < 4; r++ {
		hi := uint16(bits>>(16*r)) & 0xFF
		lo := uint16(bits>>(16*r+8)) & 0xFF
		regs[r] = hi<<8 | lo
	}
	return regs
}

// Encode32 splits a 32-bit pattern into high and low registers.
func Encode32(v uint32) [2]uint16 {
	return [2]uint16{uint16(v >> 16), uint16(v)}
}
