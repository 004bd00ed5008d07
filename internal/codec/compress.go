// internal/codec/compress.go
package codec

import (
	"math"

	"github.com/tamzrod/octave-reader/internal/status"
)

// ScaleFactor gives two implied decimal places.
const ScaleFactor = 100.0

// Limits of what fits in 16 and 32 bits after scaling.
const (
	Dec16Max = 327.67
	Dec16Min = -327.68
	Dec32Max = 21474836.47
	Dec32Min = -21474836.48
)

// CompressTo16Bits scales v into a signed 16-bit register value.
// Out of range inputs clamp to the nearest limit with an error code.
func CompressTo16Bits(v float64) (int16, status.Code) {
	switch {
	case v > Dec16Max || math.IsNaN(v):
		return math.MaxInt16, status.Overflow16
	case v < Dec16Min:
		return math.MinInt16, status.Underflow16
	}
	return int16(math.Round(v * ScaleFactor)), status.Success
}

// CompressTo32Bits scales v into a signed 32-bit value.
//
// The bound comparison alone is not reliable right at the limits, so the
// scaled integer is checked again: a sign that disagrees with the input
// means the conversion wrapped.
func CompressTo32Bits(v float64) (int32, status.Code) {
	switch {
	case v > Dec32Max || math.IsNaN(v):
		return math.MaxInt32, status.Overflow32
	case v < Dec32Min:
		return math.MinInt32, status.Underflow32
	}

	// Conversion through int64 wraps deterministically on 32-bit overflow.
	out := int32(int64(math.Round(v * ScaleFactor)))

	if out == 0 || v == 0 || (out > 0) == (v > 0) {
		return out, status.Success
	}

	if math.Signbit(v) {
		return math.MinInt32, status.Underflow32
	}
	return math.MaxInt32, status.Overflow32
}

// Expand16 undoes CompressTo16Bits.
func Expand16(x int16) float64 { return float64(x) / ScaleFactor }

// Expand32 undoes CompressTo32Bits.
func Expand32(x int32) float64 { return float64(x) / ScaleFactor }
