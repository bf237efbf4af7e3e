package tuple

import "github.com/wippyai/tuple/layout"

//go:generate go run ./cmd/recordgen -arity 8 -out tuple_gen.go

// Initializer is implemented by field types whose default value is more than
// the zero value. Init runs on a zeroed field.
type Initializer interface {
	Init() error
}

// Cloner is implemented by field types that need more than assignment to
// produce an independent copy.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by field types that hold resources.
type Destroyer interface {
	Destroy()
}

// Equaler is implemented by field types with their own notion of equality.
type Equaler[T any] interface {
	Equal(T) bool
}

// noCopy lets go vet flag copies. It is zero-size with alignment 1 so it
// does not change a record's footprint.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Hooks are detected on a nil *T and run on a local copy of the field, so
// the field pointer never reaches an interface. Records whose fields have no
// hooks therefore stay wherever the caller put them.

// InitField default-constructs the field at p. On failure the field is left
// zeroed.
func InitField[T any](p *T) error {
	var zero T
	*p = zero
	if _, ok := any((*T)(nil)).(Initializer); !ok {
		return nil
	}
	v, err := runInit[T]()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func runInit[T any]() (T, error) {
	var v T
	if err := any(&v).(Initializer).Init(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// CopyField constructs the field at dst from v. On failure the field is left
// zeroed.
func CopyField[T any](dst *T, v T) error {
	if _, ok := any((*T)(nil)).(Cloner[T]); !ok {
		*dst = v
		return nil
	}
	cv, err := runClone(v)
	if err != nil {
		var zero T
		*dst = zero
		return err
	}
	*dst = cv
	return nil
}

func runClone[T any](v T) (T, error) {
	return any(&v).(Cloner[T]).Clone()
}

// DestroyField releases the field at p and zeroes its slot.
func DestroyField[T any](p *T) {
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		runDestroy(*p)
	}
	var zero T
	*p = zero
}

func runDestroy[T any](v T) {
	any(&v).(Destroyer).Destroy()
}

// EqualField reports whether the fields at a and b are equal. Field types
// may implement Equal on either T or *T; records themselves use the latter.
func EqualField[T comparable](a, b *T) bool {
	switch any((*T)(nil)).(type) {
	case Equaler[T]:
		return runEqual(*a, *b)
	case Equaler[*T]:
		return runEqualPtr(*a, *b)
	}
	return *a == *b
}

func runEqual[T any](a, b T) bool {
	return any(&a).(Equaler[T]).Equal(b)
}

func runEqualPtr[T any](a, b T) bool {
	return any(&a).(Equaler[*T]).Equal(&b)
}

// Empty is the record with no fields. All of its operations are no-ops.
type Empty struct {
	_ noCopy
}

func (*Empty) Init() error               { return nil }
func (*Empty) Destroy()                  {}
func (*Empty) Assign(*Empty) error       { return nil }
func (*Empty) Equal(*Empty) bool         { return true }
func (*Empty) Len() int                  { return 0 }
func (*Empty) Layout() layout.Descriptor { return layout.CalculateHost() }
