// internal/catalog/functions.go
package catalog

import (
	"fmt"

	"github.com/tamzrod/octave-reader/internal/codec"
)

// Modbus function codes used by the meter.
const (
	FuncReadInputRegisters  uint8 = 0x04
	FuncWriteSingleRegister uint8 = 0x06
)

// FunctionID identifies an accessor: high byte is the Modbus function
// code, low byte the start register address.
type FunctionID uint16

// NewFunctionID combines a function code and a start address.
func NewFunctionID(fc, address uint8) FunctionID {
	return FunctionID(uint16(fc)<<8 | uint16(address))
}

// FunctionCode returns the Modbus function code.
func (id FunctionID) FunctionCode() uint8 { return uint8(id >> 8) }

// Address returns the start register address.
func (id FunctionID) Address() uint8 { return uint8(id) }

// IsRead reports whether id reads input registers.
func (id FunctionID) IsRead() bool { return id.FunctionCode() == FuncReadInputRegisters }

func (id FunctionID) String() string { return fmt.Sprintf("0x%04X", uint16(id)) }

// Function is one entry of the meter memory map.
type Function struct {
	Name  string
	ID    FunctionID
	Count uint8       // number of values; zero for writes
	Width codec.Width // width tag of each value
}

func read(name string, address, count uint8, w codec.Width) Function {
	return Function{Name: name, ID: NewFunctionID(FuncReadInputRegisters, address), Count: count, Width: w}
}

func write(name string, address uint8) Function {
	return Function{Name: name, ID: NewFunctionID(FuncWriteSingleRegister, address), Width: codec.Width16}
}

// Memory map. Addresses are a compatibility contract with the device.
var (
	ReadAlarms          = read("ReadAlarms", 0x00, 1, codec.Width16)
	SerialNumber        = read("SerialNumber", 0x01, 16, codec.Width16)
	ReadWeekday         = read("ReadWeekday", 0x11, 1, codec.Width16)
	ReadDay             = read("ReadDay", 0x12, 1, codec.Width16)
	ReadMonth           = read("ReadMonth", 0x13, 1, codec.Width16)
	ReadYear            = read("ReadYear", 0x14, 1, codec.Width16)
	ReadHours           = read("ReadHours", 0x15, 1, codec.Width16)
	ReadMinutes         = read("ReadMinutes", 0x16, 1, codec.Width16)
	VolumeUnit          = read("VolumeUnit", 0x17, 1, codec.Width16)
	ForwardVolume32     = read("ForwardVolume_32", 0x36, 1, codec.WidthU32)
	ForwardVolume64     = read("ForwardVolume_64", 0x18, 1, codec.WidthF64)
	ReverseVolume32     = read("ReverseVolume_32", 0x3A, 1, codec.WidthU32)
	ReverseVolume64     = read("ReverseVolume_64", 0x20, 1, codec.WidthF64)
	ReadVolumeResIndex  = read("ReadVolumeResIndex", 0x28, 1, codec.Width16)
	SignedCurrentFlow32 = read("SignedCurrentFlow_32", 0x3E, 1, codec.WidthI32)
	SignedCurrentFlow64 = read("SignedCurrentFlow_64", 0x29, 1, codec.WidthF64)
	ReadFlowResIndex    = read("ReadFlowResIndex", 0x31, 1, codec.Width16)
	FlowUnit            = read("FlowUnit", 0x32, 1, codec.Width16)
	FlowDirection       = read("FlowDirection", 0x33, 1, codec.Width16)
	TemperatureValue    = read("TemperatureValue", 0x34, 1, codec.Width16)
	TemperatureUnit     = read("TemperatureUnit", 0x35, 1, codec.Width16)
	NetSignedVolume32   = read("NetSignedVolume_32", 0x52, 1, codec.WidthI32)
	NetSignedVolume64   = read("NetSignedVolume_64", 0x42, 1, codec.WidthF64)
	NetUnsignedVolume32 = read("NetUnsignedVolume_32", 0x56, 1, codec.WidthU32)
	NetUnsignedVolume64 = read("NetUnsignedVolume_64", 0x4A, 1, codec.WidthF64)
	SystemReset         = write("SystemReset", 0x00)
	WriteWeekday        = write("WriteWeekday", 0x01)
	WriteDay            = write("WriteDay", 0x02)
	WriteMonth          = write("WriteMonth", 0x03)
	WriteYear           = write("WriteYear", 0x04)
	WriteHours          = write("WriteHours", 0x05)
	WriteMinutes        = write("WriteMinutes", 0x06)
	WriteVolumeResIndex = write("WriteVolumeResIndex", 0x07)
	WriteFlowResIndex   = write("WriteFlowResIndex", 0x08)
)

var functionList = []Function{
	ReadAlarms, SerialNumber, ReadWeekday, ReadDay, ReadMonth, ReadYear,
	ReadHours, ReadMinutes, VolumeUnit, ForwardVolume32, ForwardVolume64,
	ReverseVolume32, ReverseVolume64, ReadVolumeResIndex, SignedCurrentFlow32,
	SignedCurrentFlow64, ReadFlowResIndex, FlowUnit, FlowDirection,
	TemperatureValue, TemperatureUnit, NetSignedVolume32, NetSignedVolume64,
	NetUnsignedVolume32, NetUnsignedVolume64,
	SystemReset, WriteWeekday, WriteDay, WriteMonth, WriteYear, WriteHours,
	WriteMinutes, WriteVolumeResIndex, WriteFlowResIndex,
}

// FunctionNames is the name <-> identifier view of the memory map.
var FunctionNames = func() *Table[FunctionID] {
	entries := make([]Entry[FunctionID], 0, len(functionList))
	for _, f := range functionList {
		entries = append(entries, Entry[FunctionID]{f.Name, f.ID})
	}
	return NewTable(entries...)
}()

var functionsByID = func() map[FunctionID]Function {
	m := make(map[FunctionID]Function, len(functionList))
	for _, f := range functionList {
		m[f.ID] = f
	}
	return m
}()

// Lookup finds a memory map entry by name.
func Lookup(name string) (Function, bool) {
	id, ok := FunctionNames.Code(name)
	if !ok {
		return Function{}, false
	}
	return functionsByID[id], true
}

// ByID finds a memory map entry by identifier.
func ByID(id FunctionID) (Function, bool) {
	f, ok := functionsByID[id]
	return f, ok
}

// Functions returns the memory map in declaration order.
func Functions() []Function {
	out := make([]Function, len(functionList))
	copy(out, functionList)
	return out
}
