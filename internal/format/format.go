// internal/format/format.go
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tamzrod/octave-reader/internal/catalog"
	"github.com/tamzrod/octave-reader/internal/codec"
	"github.com/tamzrod/octave-reader/internal/status"
)

// NoAlarms is printed for an alarm word with no bits set.
const NoAlarms = "No alarms"

// Result renders one transaction outcome as "<function>: <text>".
func Result(fn catalog.Function, v codec.Value, code status.Code) string {
	return fn.Name + ": " + Text(fn, v, code)
}

// Text renders the outcome without the function name.
func Text(fn catalog.Function, v codec.Value, code status.Code) string {
	if code != status.Success {
		return Error(code)
	}
	if !fn.ID.IsRead() {
		return "Done writing"
	}
	return Value(fn, v)
}

// Error renders a code as "Error code N: <description>".
func Error(code status.Code) string {
	return fmt.Sprintf("Error code %d: %s", uint8(code), code.Description())
}

// Value renders a decoded value. Single 16-bit values are followed by
// their catalog interpretation when the function has one.
func Value(fn catalog.Function, v codec.Value) string {
	switch x := v.(type) {
	case codec.Unsigned32:
		return strconv.FormatUint(uint64(x), 10)
	case codec.Signed32:
		return strconv.FormatInt(int64(x), 10)
	case codec.Float64:
		return Float(float64(x))
	case codec.Sixteen:
		if fn.Count > 1 {
			return Serial(x)
		}
		s := strconv.Itoa(int(x[0]))
		if meaning, ok := Interpret(fn, x[0]); ok {
			s += ": " + meaning
		}
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Float renders a 64-bit reading with twelve significant digits.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'g', 12, 64)
}

// Serial keeps the registers that hold ASCII digits, in order.
func Serial(regs codec.Sixteen) string {
	var b strings.Builder
	for _, r := range regs {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// Interpret names a 16-bit parameter code for the functions whose value
// is a catalog code. ok is false for plain numeric quantities.
func Interpret(fn catalog.Function, raw int16) (string, bool) {
	var t *catalog.Table[uint8]
	switch fn.ID {
	case catalog.VolumeUnit.ID:
		t = catalog.VolumeUnits
	case catalog.FlowUnit.ID:
		t = catalog.FlowUnits
	case catalog.ReadVolumeResIndex.ID, catalog.ReadFlowResIndex.ID:
		t = catalog.Resolutions
	case catalog.TemperatureUnit.ID:
		t = catalog.TemperatureUnits
	case catalog.FlowDirection.ID:
		t = catalog.FlowDirections
	case catalog.ReadAlarms.ID:
		return Alarms(raw), true
	default:
		return "", false
	}

	if raw < 0 || raw > 0xFF {
		return "unknown", true
	}
	name, ok := t.Name(uint8(raw))
	if !ok {
		return "unknown", true
	}
	return name, true
}

// Alarms lists the active alarm names separated by ", ".
func Alarms(word int16) string {
	active := catalog.ActiveAlarms(word)
	if len(active) == 0 {
		return NoAlarms
	}
	return strings.Join(active, ", ")
}
