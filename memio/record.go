package memio

import (
	"encoding/binary"
	"fmt"

	"github.com/wippyai/tuple/errors"
	"github.com/wippyai/tuple/layout"
	"go.uber.org/zap"
)

// Record is a fixed-layout value whose in-memory image can be copied
// byte for byte. Bytes must return exactly Layout().Size bytes aliasing the
// value's storage.
type Record interface {
	Layout() layout.Descriptor
	Bytes() []byte
}

var littleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

func checkHost() error {
	if !littleEndian {
		return errors.Unsupported(errors.PhaseMemory, "record images require a little-endian host")
	}
	return nil
}

func image(r Record, ptr uint32) (layout.Descriptor, []byte, error) {
	d := r.Layout()
	if d.Align > 1 && ptr%d.Align != 0 {
		return d, nil, errors.Misaligned(errors.PhaseMemory, ptr, d.Align)
	}
	b := r.Bytes()
	if uint32(len(b)) != d.Size {
		return d, nil, errors.InvalidData(errors.PhaseMemory, nil,
			fmt.Sprintf("record image is %d bytes, layout says %d", len(b), d.Size))
	}
	return d, b, nil
}

// Store copies the image of r to ptr.
func Store(mem Memory, ptr uint32, r Record) error {
	if err := checkHost(); err != nil {
		return err
	}
	d, b, err := image(r, ptr)
	if err != nil {
		return err
	}
	if err := mem.Write(ptr, b); err != nil {
		return err
	}
	Logger().Debug("stored record",
		zap.Uint32("ptr", ptr),
		zap.Uint32("size", d.Size),
		zap.Uint32("align", d.Align))
	return nil
}

// Load overwrites r with the image at ptr. Records hold plain scalars, so
// no field hooks run.
func Load(mem Memory, ptr uint32, r Record) error {
	if err := checkHost(); err != nil {
		return err
	}
	d, b, err := image(r, ptr)
	if err != nil {
		return err
	}
	src, err := mem.Read(ptr, d.Size)
	if err != nil {
		return err
	}
	copy(b, src)
	Logger().Debug("loaded record",
		zap.Uint32("ptr", ptr),
		zap.Uint32("size", d.Size))
	return nil
}
