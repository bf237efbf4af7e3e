// Package memio mirrors fixed-layout records into WebAssembly linear memory.
//
// A record laid out by package layout has the same byte image on every
// little-endian host, so guest code compiled with the same natural-alignment
// rules can read it in place. This package moves those images in and out of
// wazero memory and offers offset-based access for callers that only hold a
// layout.Descriptor.
//
// # Memory
//
// Wrap adapts a wazero api.Memory:
//
//	mem := memio.Wrap(mod.ExportedMemory("memory"))
//
// # Records
//
// Any type with Layout and Bytes methods satisfies Record; records emitted
// by recordgen do.
//
//	var s sample.Sample
//	s.InitWith(7, 2.5, -1)
//	if err := memio.Store(mem, 64, &s); err != nil {
//		return err
//	}
//
// Store and Load reject addresses that are not a multiple of the record
// alignment, and refuse to run on big-endian hosts where the in-memory image
// would not match the guest's view.
//
// # Views
//
// View reads and writes individual fields by index:
//
//	v, err := memio.NewView(mem, 64, s.Layout())
//	id, err := v.U32(0)
//
// Each accessor checks the field index and that the requested width equals
// the field size.
//
// # Allocation
//
// BumpAllocator hands out aligned blocks from a fixed region. WrapAllocator
// adapts a guest cabi_realloc export. StoreNew and StoreSlice allocate and
// store in one step; elements of a slice are placed Size bytes apart, which
// keeps every element aligned.
package memio
