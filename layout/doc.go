// Package layout derives record layouts with standard (natural) alignment.
//
// Given an ordered list of field types, described by their size and natural
// alignment, the calculator assigns each field a byte offset and derives the
// record's alignment and total size:
//
//	offset_i     = AlignTo(end_{i-1}, align_i)     (offset_0 = 0)
//	record align = max(align_0..align_n-1)          (1 for an empty list)
//	record size  = AlignTo(end_{n-1}, record align)
//
// The rules are deterministic, so any collaborator (a serializer, a code
// generator emitting direct loads and stores, a guest module reading linear
// memory) can recompute the same offsets independently as long as it uses
// AlignTo.
//
// # Usage
//
//	d := layout.Calculate(layout.Of[int32](), layout.Of[float64](), layout.Of[int8]())
//	// d.Offsets = [0 8 16], d.End = 17, d.Align = 8, d.Size = 24
//
//	off := layout.OffsetAt(1, layout.Of[int32](), layout.Of[float64]())
//	// off = 8
//
// # Canonical ABI
//
// WITCalculator computes the same quantities for Component Model WIT types.
// Records and tuples of WIT types go through Calculate, so a Descriptor for
// tuple<s32, f64, s8> matches the host layout of (int32, float64, int8).
package layout
