// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/tamzrod/octave-reader/internal/codec"
)

func TestTable_BothViewsAgree(t *testing.T) {
	tables := map[string]*Table[uint8]{
		"flow units":        FlowUnits,
		"volume units":      VolumeUnits,
		"temperature units": TemperatureUnits,
		"flow directions":   FlowDirections,
		"resolutions":       Resolutions,
		"alarms":            Alarms,
	}

	for label, tbl := range tables {
		for _, e := range tbl.Entries() {
			code, ok := tbl.Code(e.Name)
			if !ok || code != e.Code {
				t.Fatalf("%s: Code(%q) = %d,%v want %d", label, e.Name, code, ok, e.Code)
			}
			name, ok := tbl.Name(e.Code)
			if !ok || name != e.Name {
				t.Fatalf("%s: Name(%d) = %q,%v want %q", label, e.Code, name, ok, e.Name)
			}
		}
	}
}

func TestTable_EntriesIsACopy(t *testing.T) {
	entries := VolumeUnits.Entries()
	entries[0].Name = "mutated"

	if name, _ := VolumeUnits.Name(0); name != "Cubic Meters" {
		t.Fatalf("table mutated through Entries(): %q", name)
	}
}

func TestMemoryMap(t *testing.T) {
	cases := []struct {
		fn    Function
		id    FunctionID
		count uint8
		width codec.Width
	}{
		{ReadAlarms, 0x0400, 1, codec.Width16},
		{SerialNumber, 0x0401, 16, codec.Width16},
		{ForwardVolume32, 0x0436, 1, codec.WidthU32},
		{ForwardVolume64, 0x0418, 1, codec.WidthF64},
		{SignedCurrentFlow32, 0x043E, 1, codec.WidthI32},
		{NetSignedVolume32, 0x0452, 1, codec.WidthI32},
		{NetSignedVolume64, 0x0442, 1, codec.WidthF64},
		{NetUnsignedVolume64, 0x044A, 1, codec.WidthF64},
		{SystemReset, 0x0600, 0, codec.Width16},
		{WriteFlowResIndex, 0x0608, 0, codec.Width16},
	}

	for _, c := range cases {
		if c.fn.ID != c.id || c.fn.Count != c.count || c.fn.Width != c.width {
			t.Fatalf("%s: got=(%v,%d,%v) want=(%v,%d,%v)",
				c.fn.Name, c.fn.ID, c.fn.Count, c.fn.Width, c.id, c.count, c.width)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, f := range Functions() {
		got, ok := Lookup(f.Name)
		if !ok || got != f {
			t.Fatalf("Lookup(%q) = %+v,%v", f.Name, got, ok)
		}
		byID, ok := ByID(f.ID)
		if !ok || byID.Name != f.Name {
			t.Fatalf("ByID(%v) = %+v,%v", f.ID, byID, ok)
		}
	}

	if _, ok := Lookup("NoSuchFunction"); ok {
		t.Fatalf("unknown name resolved")
	}
}

func TestFunctionID(t *testing.T) {
	id := NewFunctionID(FuncReadInputRegisters, 0x3A)
	if id != 0x043A {
		t.Fatalf("id: got=%v want=0x043A", id)
	}
	if id.FunctionCode() != 0x04 || id.Address() != 0x3A || !id.IsRead() {
		t.Fatalf("unexpected split: fc=%d addr=%d", id.FunctionCode(), id.Address())
	}
	if NewFunctionID(FuncWriteSingleRegister, 1).IsRead() {
		t.Fatalf("write id reported as read")
	}
}

func TestActiveAlarms(t *testing.T) {
	got := ActiveAlarms(1<<5 | 1<<12 | 1<<3)
	want := []string{"Measurement Fail", "Module battery"}

	if len(got) != len(want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got=%v want=%v", got, want)
		}
	}

	if len(ActiveAlarms(0)) != 0 {
		t.Fatalf("zero word must have no active alarms")
	}
}
