// internal/catalog/params.go
package catalog

// Parameter codes defined by the Octave memory map. They are the same for
// every compatible meter.

var FlowUnits = NewTable(
	Entry[uint8]{"Cubic Meters/Hour", 0},
	Entry[uint8]{"Gallons/Minute", 1},
	Entry[uint8]{"Litres/Second", 2},
	Entry[uint8]{"Imperial Gallons/ Minute", 3},
	Entry[uint8]{"Litres/Minute", 4},
	Entry[uint8]{"Barrel/Minute", 5},
)

var VolumeUnits = NewTable(
	Entry[uint8]{"Cubic Meters", 0},
	Entry[uint8]{"Cubic Feet", 1},
	Entry[uint8]{"Cubic Inch", 2},
	Entry[uint8]{"Cubic Yards", 3},
	Entry[uint8]{"US Gallons", 4},
	Entry[uint8]{"Imperial Gallons", 5},
	Entry[uint8]{"Acre Feet", 6},
	Entry[uint8]{"Kiloliters", 7},
	Entry[uint8]{"Liters", 8},
	Entry[uint8]{"Acre-inch", 9},
	Entry[uint8]{"Barrel", 10},
)

var TemperatureUnits = NewTable(
	Entry[uint8]{"Not Active", 0},
	Entry[uint8]{"Celsius", 1},
	Entry[uint8]{"Fahrenheit", 2},
)

var FlowDirections = NewTable(
	Entry[uint8]{"No flow", 0},
	Entry[uint8]{"Forward flow", 1},
	Entry[uint8]{"Backward flow", 2},
)

// Resolutions maps resolution indices. Index 0 is not implemented by the
// meter.
var Resolutions = NewTable(
	Entry[uint8]{"0.001x", 1},
	Entry[uint8]{"0.01x", 2},
	Entry[uint8]{"0.1x", 3},
	Entry[uint8]{"1x", 4},
	Entry[uint8]{"10x", 5},
	Entry[uint8]{"100x", 6},
	Entry[uint8]{"1000x", 7},
	Entry[uint8]{"10000x", 8},
)

// MaxResolutionIndex is the largest index a resolution write accepts.
const MaxResolutionIndex = 8

// Alarms maps alarm bit indices to their names.
var Alarms = NewTable(
	Entry[uint8]{"Leakage", 0},
	Entry[uint8]{"Measurement Fail", 5},
	Entry[uint8]{"Octave Battery", 7},
	Entry[uint8]{"Flow Rate Cut Off", 11},
	Entry[uint8]{"Module battery", 12},
	Entry[uint8]{"Water meter-Module communication error", 13},
)

// ActiveAlarms returns the names of the alarm bits set in word, in bit
// order.
func ActiveAlarms(word int16) []string {
	var out []string
	for _, e := range Alarms.Entries() {
		if uint16(word)&(1<<e.Code) != 0 {
			out = append(out, e.Name)
		}
	}
	return out
}
