package memio

import (
	"fmt"
	"math"

	"github.com/wippyai/tuple/errors"
	"github.com/wippyai/tuple/layout"
)

// View accesses the fields of a record image in place, using only its
// descriptor.
type View struct {
	mem  Memory
	desc layout.Descriptor
	base uint32
}

// NewView returns a view of the record at base. base must satisfy the
// descriptor's alignment and the descriptor must be well formed.
func NewView(mem Memory, base uint32, d layout.Descriptor) (*View, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Align > 1 && base%d.Align != 0 {
		return nil, errors.Misaligned(errors.PhaseView, base, d.Align)
	}
	if s, ok := mem.(Sizer); ok && uint64(base)+uint64(d.Size) > uint64(s.Size()) {
		return nil, errors.New(errors.PhaseView, errors.KindOutOfBounds).
			Value(base).
			Detail("record of %d bytes at %d exceeds memory of %d bytes", d.Size, base, s.Size()).
			Build()
	}
	return &View{mem: mem, desc: d, base: base}, nil
}

// Base returns the address of the record.
func (v *View) Base() uint32 { return v.base }

// Layout returns the descriptor the view was built with.
func (v *View) Layout() layout.Descriptor { return v.desc }

// Addr returns the absolute address of field k.
func (v *View) Addr(k int) (uint32, error) {
	if k < 0 || k >= v.desc.Len() {
		return 0, errors.OutOfBounds(errors.PhaseView, nil, k, v.desc.Len())
	}
	return v.base + v.desc.Offset(k), nil
}

func (v *View) field(k int, width uint32) (uint32, error) {
	addr, err := v.Addr(k)
	if err != nil {
		return 0, err
	}
	if got := v.desc.Fields[k].Size; got != width {
		e := errors.TypeMismatch(errors.PhaseView, []string{fmt.Sprint(k)},
			fmt.Sprintf("uint%d", width*8), fmt.Sprintf("%d-byte field", got))
		e.Value = width
		return 0, e
	}
	return addr, nil
}

// U8 reads a 1-byte field.
func (v *View) U8(k int) (uint8, error) {
	addr, err := v.field(k, 1)
	if err != nil {
		return 0, err
	}
	return v.mem.ReadU8(addr)
}

// U16 reads a 2-byte little-endian field.
func (v *View) U16(k int) (uint16, error) {
	addr, err := v.field(k, 2)
	if err != nil {
		return 0, err
	}
	return v.mem.ReadU16(addr)
}

// U32 reads a 4-byte little-endian field.
func (v *View) U32(k int) (uint32, error) {
	addr, err := v.field(k, 4)
	if err != nil {
		return 0, err
	}
	return v.mem.ReadU32(addr)
}

// U64 reads an 8-byte little-endian field.
func (v *View) U64(k int) (uint64, error) {
	addr, err := v.field(k, 8)
	if err != nil {
		return 0, err
	}
	return v.mem.ReadU64(addr)
}

// F32 reads a 4-byte field as an IEEE 754 float.
func (v *View) F32(k int) (float32, error) {
	bits, err := v.U32(k)
	return math.Float32frombits(bits), err
}

// F64 reads an 8-byte field as an IEEE 754 float.
func (v *View) F64(k int) (float64, error) {
	bits, err := v.U64(k)
	return math.Float64frombits(bits), err
}

// PutU8 writes a 1-byte field.
func (v *View) PutU8(k int, x uint8) error {
	addr, err := v.field(k, 1)
	if err != nil {
		return err
	}
	return v.mem.WriteU8(addr, x)
}

// PutU16 writes a 2-byte little-endian field.
func (v *View) PutU16(k int, x uint16) error {
	addr, err := v.field(k, 2)
	if err != nil {
		return err
	}
	return v.mem.WriteU16(addr, x)
}

// PutU32 writes a 4-byte little-endian field.
func (v *View) PutU32(k int, x uint32) error {
	addr, err := v.field(k, 4)
	if err != nil {
		return err
	}
	return v.mem.WriteU32(addr, x)
}

// PutU64 writes an 8-byte little-endian field.
func (v *View) PutU64(k int, x uint64) error {
	addr, err := v.field(k, 8)
	if err != nil {
		return err
	}
	return v.mem.WriteU64(addr, x)
}

// PutF32 writes a 4-byte field as an IEEE 754 float.
func (v *View) PutF32(k int, x float32) error {
	return v.PutU32(k, math.Float32bits(x))
}

// PutF64 writes an 8-byte field as an IEEE 754 float.
func (v *View) PutF64(k int, x float64) error {
	return v.PutU64(k, math.Float64bits(x))
}
