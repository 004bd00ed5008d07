// internal/format/format_test.go
package format

import (
	"testing"

	"github.com/tamzrod/octave-reader/internal/catalog"
	"github.com/tamzrod/octave-reader/internal/codec"
	"github.com/tamzrod/octave-reader/internal/status"
)

func TestResult(t *testing.T) {
	serial := codec.Sixteen{'0', '4', 0, '2', ' ', '7', 0x7F, '9'}

	cases := []struct {
		name string
		fn   catalog.Function
		v    codec.Value
		code status.Code
		want string
	}{
		{"error", catalog.ForwardVolume64, nil, status.Timeout, "ForwardVolume_64: Error code 5: Modbus Timeout"},
		{"busy", catalog.ReadDay, nil, status.ChannelBusy, "ReadDay: Error code 3: Illegal Modbus Data Value"},
		{"write", catalog.WriteDay, nil, status.Success, "WriteDay: Done writing"},
		{"u32", catalog.ForwardVolume32, codec.Unsigned32(4000000000), status.Success, "ForwardVolume_32: 4000000000"},
		{"i32", catalog.NetSignedVolume32, codec.Signed32(-10), status.Success, "NetSignedVolume_32: -10"},
		{"f64", catalog.ForwardVolume64, codec.Float64(1234.5), status.Success, "ForwardVolume_64: 1234.5"},
		{"serial", catalog.SerialNumber, serial, status.Success, "SerialNumber: 04279"},
		{"plain16", catalog.TemperatureValue, codec.Sixteen{-4}, status.Success, "TemperatureValue: -4"},
		{"unit", catalog.VolumeUnit, codec.Sixteen{4}, status.Success, "VolumeUnit: 4: US Gallons"},
		{"flow unit", catalog.FlowUnit, codec.Sixteen{2}, status.Success, "FlowUnit: 2: Litres/Second"},
		{"resolution", catalog.ReadFlowResIndex, codec.Sixteen{4}, status.Success, "ReadFlowResIndex: 4: 1x"},
		{"direction", catalog.FlowDirection, codec.Sixteen{2}, status.Success, "FlowDirection: 2: Backward flow"},
		{"temp unit", catalog.TemperatureUnit, codec.Sixteen{1}, status.Success, "TemperatureUnit: 1: Celsius"},
		{"unknown code", catalog.VolumeUnit, codec.Sixteen{42}, status.Success, "VolumeUnit: 42: unknown"},
		{"no alarms", catalog.ReadAlarms, codec.Sixteen{0}, status.Success, "ReadAlarms: 0: No alarms"},
		{"alarms", catalog.ReadAlarms, codec.Sixteen{1 | 1<<7}, status.Success, "ReadAlarms: 129: Leakage, Octave Battery"},
	}

	for _, tc := range cases {
		if got := Result(tc.fn, tc.v, tc.code); got != tc.want {
			t.Fatalf("%s: got=%q want=%q", tc.name, got, tc.want)
		}
	}
}

func TestError_UnknownCode(t *testing.T) {
	if got := Error(status.Code(11)); got != "Error code 11: Unknown error" {
		t.Fatalf("got=%q", got)
	}
}

func TestInterpret_PlainQuantity(t *testing.T) {
	if _, ok := Interpret(catalog.ReadYear, 24); ok {
		t.Fatalf("ReadYear should not be interpreted")
	}
}
