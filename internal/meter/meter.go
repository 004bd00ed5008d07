// internal/meter/meter.go
package meter

import (
	"context"
	"fmt"

	"github.com/tamzrod/octave-reader/internal/catalog"
	"github.com/tamzrod/octave-reader/internal/codec"
	"github.com/tamzrod/octave-reader/internal/engine"
	"github.com/tamzrod/octave-reader/internal/status"
)

// Meter exposes the Octave memory map as named operations.
//
// Read accessors return the content of the decode buffer matching their
// width together with the transaction code. The value is only meaningful
// when the code is status.Success; after a failure it is whatever the
// last successful read of that width left behind.
type Meter struct {
	eng *engine.Engine
}

// New wraps an engine.
func New(eng *engine.Engine) *Meter {
	return &Meter{eng: eng}
}

// Engine returns the underlying transaction engine.
func (m *Meter) Engine() *engine.Engine { return m.eng }

// Reading is the outcome of a read by name.
type Reading struct {
	Function catalog.Function
	Value    codec.Value // nil unless Code is Success
	Code     status.Code
}

// Read performs the read accessor registered under name.
func (m *Meter) Read(ctx context.Context, name string) (Reading, error) {
	fn, ok := catalog.Lookup(name)
	if !ok {
		return Reading{}, fmt.Errorf("meter: unknown quantity %q", name)
	}
	if !fn.ID.IsRead() {
		return Reading{}, fmt.Errorf("meter: %q is not a read", name)
	}
	v, code := m.read(ctx, fn)
	return Reading{Function: fn, Value: v, Code: code}, nil
}

// Write performs the write accessor registered under name.
func (m *Meter) Write(ctx context.Context, name string, value uint8) (status.Code, error) {
	fn, ok := catalog.Lookup(name)
	if !ok {
		return status.Success, fmt.Errorf("meter: unknown quantity %q", name)
	}

	switch fn {
	case catalog.SystemReset:
		return m.SystemReset(ctx), nil
	case catalog.WriteVolumeResIndex:
		return m.WriteVolumeResIndex(ctx, value), nil
	case catalog.WriteFlowResIndex:
		return m.WriteFlowResIndex(ctx, value), nil
	}

	if fn.ID.IsRead() {
		return status.Success, fmt.Errorf("meter: %q is not a write", name)
	}
	return m.write(ctx, fn, uint16(value)), nil
}

func (m *Meter) read(ctx context.Context, fn catalog.Function) (codec.Value, status.Code) {
	return m.eng.Read(ctx, fn.ID.Address(), fn.Count, fn.Width)
}

func (m *Meter) write(ctx context.Context, fn catalog.Function, value uint16) status.Code {
	return m.eng.Write(ctx, fn.ID.Address(), value)
}

func (m *Meter) readInt16(ctx context.Context, fn catalog.Function) (int16, status.Code) {
	_, code := m.read(ctx, fn)
	return m.eng.Buffers().Int16[0], code
}

func (m *Meter) readUint32(ctx context.Context, fn catalog.Function) (uint32, status.Code) {
	_, code := m.read(ctx, fn)
	return m.eng.Buffers().Uint32, code
}

func (m *Meter) readInt32(ctx context.Context, fn catalog.Function) (int32, status.Code) {
	_, code := m.read(ctx, fn)
	return m.eng.Buffers().Int32, code
}

func (m *Meter) readFloat64(ctx context.Context, fn catalog.Function) (float64, status.Code) {
	_, code := m.read(ctx, fn)
	return m.eng.Buffers().Float64, code
}

// ---- reads ----

// ReadAlarms returns the alarm bit word. See catalog.ActiveAlarms.
func (m *Meter) ReadAlarms(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadAlarms)
}

// SerialNumber returns 16 registers, one ASCII character each.
func (m *Meter) SerialNumber(ctx context.Context) ([16]int16, status.Code) {
	_, code := m.read(ctx, catalog.SerialNumber)
	return m.eng.Buffers().Int16, code
}

func (m *Meter) ReadWeekday(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadWeekday)
}

func (m *Meter) ReadDay(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadDay)
}

func (m *Meter) ReadMonth(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadMonth)
}

func (m *Meter) ReadYear(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadYear)
}

func (m *Meter) ReadHours(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadHours)
}

func (m *Meter) ReadMinutes(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadMinutes)
}

// VolumeUnit returns a catalog.VolumeUnits code.
func (m *Meter) VolumeUnit(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.VolumeUnit)
}

func (m *Meter) ForwardVolume32(ctx context.Context) (uint32, status.Code) {
	return m.readUint32(ctx, catalog.ForwardVolume32)
}

func (m *Meter) ForwardVolume64(ctx context.Context) (float64, status.Code) {
	return m.readFloat64(ctx, catalog.ForwardVolume64)
}

func (m *Meter) ReverseVolume32(ctx context.Context) (uint32, status.Code) {
	return m.readUint32(ctx, catalog.ReverseVolume32)
}

func (m *Meter) ReverseVolume64(ctx context.Context) (float64, status.Code) {
	return m.readFloat64(ctx, catalog.ReverseVolume64)
}

// ReadVolumeResIndex returns a catalog.Resolutions index.
func (m *Meter) ReadVolumeResIndex(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadVolumeResIndex)
}

func (m *Meter) SignedCurrentFlow32(ctx context.Context) (int32, status.Code) {
	return m.readInt32(ctx, catalog.SignedCurrentFlow32)
}

func (m *Meter) SignedCurrentFlow64(ctx context.Context) (float64, status.Code) {
	return m.readFloat64(ctx, catalog.SignedCurrentFlow64)
}

// ReadFlowResIndex returns a catalog.Resolutions index.
func (m *Meter) ReadFlowResIndex(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.ReadFlowResIndex)
}

// FlowUnit returns a catalog.FlowUnits code.
func (m *Meter) FlowUnit(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.FlowUnit)
}

// FlowDirection returns a catalog.FlowDirections code.
func (m *Meter) FlowDirection(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.FlowDirection)
}

func (m *Meter) TemperatureValue(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.TemperatureValue)
}

// TemperatureUnit returns a catalog.TemperatureUnits code.
func (m *Meter) TemperatureUnit(ctx context.Context) (int16, status.Code) {
	return m.readInt16(ctx, catalog.TemperatureUnit)
}

func (m *Meter) NetSignedVolume32(ctx context.Context) (int32, status.Code) {
	return m.readInt32(ctx, catalog.NetSignedVolume32)
}

func (m *Meter) NetSignedVolume64(ctx context.Context) (float64, status.Code) {
	return m.readFloat64(ctx, catalog.NetSignedVolume64)
}

func (m *Meter) NetUnsignedVolume32(ctx context.Context) (uint32, status.Code) {
	return m.readUint32(ctx, catalog.NetUnsignedVolume32)
}

func (m *Meter) NetUnsignedVolume64(ctx context.Context) (float64, status.Code) {
	return m.readFloat64(ctx, catalog.NetUnsignedVolume64)
}

// ---- writes ----

// SystemReset writes 1 to the reset register.
func (m *Meter) SystemReset(ctx context.Context) status.Code {
	return m.write(ctx, catalog.SystemReset, 0x1)
}

// WriteWeekday expects 1 to 7.
func (m *Meter) WriteWeekday(ctx context.Context, v uint8) status.Code {
	return m.write(ctx, catalog.WriteWeekday, uint16(v))
}

// WriteDay expects 1 to 31.
func (m *Meter) WriteDay(ctx context.Context, v uint8) status.Code {
	return m.write(ctx, catalog.WriteDay, uint16(v))
}

// WriteMonth expects 1 to 12.
func (m *Meter) WriteMonth(ctx context.Context, v uint8) status.Code {
	return m.write(ctx, catalog.WriteMonth, uint16(v))
}

// WriteYear expects 14 to 99.
func (m *Meter) WriteYear(ctx context.Context, v uint8) status.Code {
	return m.write(ctx, catalog.WriteYear, uint16(v))
}

// WriteHours expects 0 to 23.
func (m *Meter) WriteHours(ctx context.Context, v uint8) status.Code {
	return m.write(ctx, catalog.WriteHours, uint16(v))
}

// WriteMinutes expects 0 to 59.
func (m *Meter) WriteMinutes(ctx context.Context, v uint8) status.Code {
	return m.write(ctx, catalog.WriteMinutes, uint16(v))
}

// WriteVolumeResIndex rejects indices above catalog.MaxResolutionIndex
// without touching the transport.
func (m *Meter) WriteVolumeResIndex(ctx context.Context, v uint8) status.Code {
	if v > catalog.MaxResolutionIndex {
		return status.InvalidResolutionIndex
	}
	return m.write(ctx, catalog.WriteVolumeResIndex, uint16(v))
}

// WriteFlowResIndex rejects indices above catalog.MaxResolutionIndex
// without touching the transport.
func (m *Meter) WriteFlowResIndex(ctx context.Context, v uint8) status.Code {
	if v > catalog.MaxResolutionIndex {
		return status.InvalidResolutionIndex
	}
	return m.write(ctx, catalog.WriteFlowResIndex, uint16(v))
}
