package layout

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/wippyai/tuple/errors"
)

// Info is the size and natural alignment of one field type.
type Info struct {
	Size  uint32
	Align uint32
}

// Of returns the host size and alignment of T.
func Of[T any]() Info {
	var z T
	return Info{
		Size:  narrow(unsafe.Sizeof(z)),
		Align: narrow(unsafe.Alignof(z)),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("size=%d align=%d", i.Size, i.Align)
}

// AlignTo rounds x up to the next multiple of a. A zero alignment leaves x
// unchanged.
func AlignTo(x, a uint32) uint32 {
	if a == 0 || x%a == 0 {
		return x
	}
	return mustMul(a, x/a+1)
}

// Descriptor is the derived layout of a field list.
type Descriptor struct {
	Fields  []Info
	Offsets []uint32
	// End is the offset immediately following the last field.
	End   uint32
	Align uint32
	Size  uint32
}

// Calculate lays out fields left to right starting at offset 0.
// It panics if the layout does not fit in 32 bits.
func Calculate(fields ...Info) Descriptor {
	d := Descriptor{
		Fields:  fields,
		Offsets: make([]uint32, len(fields)),
	}
	align, span := place(fields, 0, d.Offsets)
	d.Align = align
	d.End = span
	d.Size = AlignTo(span, align)
	return d
}

// CalculateHost is Calculate adjusted to the Go compiler's struct layout.
// A struct with nonzero size that ends in a zero-size field gets one extra
// byte before the size is rounded, so a pointer to that field never points
// past the struct. Field offsets are unchanged.
func CalculateHost(fields ...Info) Descriptor {
	d := Calculate(fields...)
	if n := len(fields); n > 0 && fields[n-1].Size == 0 && d.End > 0 {
		d.Size = AlignTo(mustAdd(d.End, 1), d.Align)
	}
	return d
}

// place assigns offsets to fields starting at base and returns the alignment
// and byte span contributed by fields[0] and everything after it.
func place(fields []Info, base uint32, offsets []uint32) (align, span uint32) {
	if len(fields) == 0 {
		return 1, 0
	}
	head := fields[0]
	off := AlignTo(base, head.Align)
	offsets[0] = off

	tailAlign, tailSpan := place(fields[1:], mustAdd(off, head.Size), offsets[1:])

	return max(head.Align, tailAlign), mustAdd(mustAdd(off-base, head.Size), tailSpan)
}

// OffsetAt returns the offset of field k without laying out the fields that
// follow it. It panics if k is out of range.
func OffsetAt(k int, fields ...Info) uint32 {
	if k < 0 || k >= len(fields) {
		panic(fmt.Sprintf("layout: field index %d out of range [0,%d)", k, len(fields)))
	}
	base := uint32(0)
	for i := 0; ; i++ {
		off := AlignTo(base, fields[i].Align)
		if i == k {
			return off
		}
		base = mustAdd(off, fields[i].Size)
	}
}

// Len returns the number of fields.
func (d Descriptor) Len() int {
	return len(d.Offsets)
}

// Offset returns the offset of field k.
func (d Descriptor) Offset(k int) uint32 {
	return d.Offsets[k]
}

// Padding returns the number of bytes inserted before field k.
func (d Descriptor) Padding(k int) uint32 {
	if k == 0 {
		return d.Offsets[0]
	}
	return d.Offsets[k] - (d.Offsets[k-1] + d.Fields[k-1].Size)
}

// TailPadding returns the bytes between the last field and the record size.
func (d Descriptor) TailPadding() uint32 {
	return d.Size - d.End
}

// Validate checks the layout invariants: every offset is aligned, fields do
// not overlap, the size is a multiple of the alignment, and the alignment is
// the maximum field alignment.
func (d Descriptor) Validate() error {
	if len(d.Fields) != len(d.Offsets) {
		return errors.InvalidData(errors.PhaseLayout, nil,
			fmt.Sprintf("%d fields but %d offsets", len(d.Fields), len(d.Offsets)))
	}

	wantAlign := uint32(1)
	prevEnd := uint32(0)
	for i, f := range d.Fields {
		off := d.Offsets[i]
		if f.Align != 0 && off%f.Align != 0 {
			return errors.New(errors.PhaseLayout, errors.KindMisaligned).
				Path(fmt.Sprint(i)).
				Value(off).
				Detail("offset %d is not a multiple of %d", off, f.Align).
				Build()
		}
		if off < prevEnd {
			return errors.New(errors.PhaseLayout, errors.KindOverlap).
				Path(fmt.Sprint(i)).
				Value(off).
				Detail("offset %d overlaps previous field ending at %d", off, prevEnd).
				Build()
		}
		prevEnd = off + f.Size
		wantAlign = max(wantAlign, f.Align)
	}

	if d.End != prevEnd {
		return errors.InvalidData(errors.PhaseLayout, []string{"end"},
			fmt.Sprintf("end %d, last field ends at %d", d.End, prevEnd))
	}
	if d.Align != wantAlign {
		return errors.InvalidData(errors.PhaseLayout, []string{"align"},
			fmt.Sprintf("alignment %d, widest field needs %d", d.Align, wantAlign))
	}
	if d.Size < d.End || d.Size%d.Align != 0 {
		return errors.New(errors.PhaseLayout, errors.KindMisaligned).
			Path("size").
			Value(d.Size).
			Detail("size %d is not a multiple of %d covering %d bytes", d.Size, d.Align, d.End).
			Build()
	}
	return nil
}

func narrow(v uintptr) uint32 {
	if uint64(v) > math.MaxUint32 {
		panic(errors.Overflow(errors.PhaseLayout, nil, uint64(v), "u32"))
	}
	return uint32(v)
}

func mustAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		panic(errors.Overflow(errors.PhaseLayout, nil, uint64(a)+uint64(b), "u32"))
	}
	return a + b
}

func mustMul(a, b uint32) uint32 {
	if b != 0 && a > math.MaxUint32/b {
		panic(errors.Overflow(errors.PhaseLayout, nil, uint64(a)*uint64(b), "u32"))
	}
	return a * b
}
