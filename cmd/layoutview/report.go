package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/tuple/errors"
	"github.com/wippyai/tuple/internal/scalar"
	"github.com/wippyai/tuple/layout"
)

// report is the layout of one field list.
type report struct {
	names []string
	desc  layout.Descriptor
}

func newReport(names []string) (*report, error) {
	if len(names) == 0 {
		return nil, errors.InvalidInput(errors.PhaseLayout, nil, "no field types given")
	}
	infos := make([]layout.Info, len(names))
	for i, name := range names {
		typ, ok := scalar.Lookup(name)
		if !ok {
			return nil, errors.UnknownType(errors.PhaseLayout, []string{fmt.Sprint(i)}, name)
		}
		infos[i] = typ.Info
	}
	return &report{names: names, desc: layout.Calculate(infos...)}, nil
}

// byteMap returns one cell per byte: the owning field index, or -1 for
// padding.
func (r *report) byteMap() []int {
	cells := make([]int, r.desc.Size)
	for i := range cells {
		cells[i] = -1
	}
	for k, f := range r.desc.Fields {
		off := r.desc.Offset(k)
		for b := off; b < off+f.Size; b++ {
			cells[b] = k
		}
	}
	return cells
}

func (r *report) summary() string {
	d := r.desc
	return fmt.Sprintf("size=%d align=%d end=%d tail=%d", d.Size, d.Align, d.End, d.TailPadding())
}

// fieldRune labels field k in the plain byte map.
func fieldRune(k int) byte {
	const labels = "0123456789abcdefghijklmnopqrstuvwxyz"
	if k < 0 {
		return '.'
	}
	return labels[k%len(labels)]
}

func (r *report) writePlain(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-3s %-6s %6s %4s %5s %3s\n", "#", "type", "offset", "size", "align", "pad")
	for k, name := range r.names {
		f := r.desc.Fields[k]
		fmt.Fprintf(&b, "%-3d %-6s %6d %4d %5d %3d\n", k, name, r.desc.Offset(k), f.Size, f.Align, r.desc.Padding(k))
	}
	b.WriteString(r.summary())
	b.WriteString("\n")

	cells := r.byteMap()
	for i, c := range cells {
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(fieldRune(c))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
