// Package tuple provides fixed-size heterogeneous records with standard
// alignment.
//
// A record packs one value of each of its field types into a single inline
// storage block laid out by the layout package: each field sits at its
// natural alignment, the record's alignment is the widest field alignment,
// and its size is rounded up to that alignment. The record carries no type
// tags and no indirection. Operations on records whose fields define none of
// the hook methods below do not allocate.
//
// # Architecture Overview
//
//	tuple/              Record containers T1..T8, Empty, field hooks
//	├── layout/         Offset, alignment and size derivation; WIT layouts
//	├── memio/          Record images in WebAssembly linear memory
//	├── errors/         Structured error types
//	├── internal/
//	│   ├── scalar/     Scalar field types of generated records
//	│   └── gen/        Code generator for concrete and generic records
//	├── cmd/            recordgen and layoutview tools
//	└── examples/       Generated sample records and a runnable demo
//
// # Quick Start
//
//	var r tuple.T3[int32, float64, int8]
//	if err := r.InitWith(5, 2.5, -1); err != nil {
//	    return err
//	}
//	defer r.Destroy()
//
//	*r.At1() = 3.5   // mutate in place
//	fmt.Println(r.Get0(), r.Get1(), r.Get2())
//
// # Lifecycle
//
// A record is live between a successful Init or InitWith and the matching
// Destroy. Fields are constructed, compared and destroyed in positional
// order. If a field fails to construct, the fields before it are destroyed
// and the field's error is returned as is. Destroy must be called exactly
// once per live record.
//
// Field types customize the lifecycle through optional methods:
//
//	Init() error          default construction beyond the zero value
//	Clone() (T, error)    independent copies for InitWith and Assign
//	Destroy()             resource release
//	Equal(T) bool         field equality instead of ==
//
// Hooks run on a copy of the field value. The results of Init and Clone are
// then stored in the field.
//
// # Copying
//
// Records embed a noCopy marker so go vet reports accidental copies. Use
// Assign to copy one record into another; it destroys the destination's
// fields and copy-constructs each from the source. Compare records with
// Equal. The == operator compares field values directly and skips any Equal
// method a field type defines.
//
// # Thread Safety
//
// Records have no internal synchronization. Concurrent reads are safe;
// any mutation requires external locking.
package tuple
