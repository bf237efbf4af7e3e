package tuple

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects lifecycle events of tracked fields.
type recorder struct {
	events    []string
	failInit  string
	failClone string
	compares  int
}

var rec recorder

func resetRecorder(t *testing.T) {
	t.Helper()
	rec = recorder{}
	t.Cleanup(func() { rec = recorder{} })
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

var (
	errInit  = errors.New("init failed")
	errClone = errors.New("clone failed")
)

type tag interface{ name() string }

type tagA struct{}
type tagB struct{}
type tagC struct{}

func (tagA) name() string { return "a" }
func (tagB) name() string { return "b" }
func (tagC) name() string { return "c" }

// tracked is an instrumented field type.
type tracked[K tag] struct {
	v int32
}

func (p *tracked[K]) Init() error {
	var k K
	rec.add("init:%s", k.name())
	if rec.failInit == k.name() {
		return errInit
	}
	p.v = -1
	return nil
}

func (p *tracked[K]) Clone() (tracked[K], error) {
	var k K
	rec.add("clone:%s", k.name())
	if rec.failClone == k.name() {
		return tracked[K]{}, errClone
	}
	return tracked[K]{v: p.v}, nil
}

func (p *tracked[K]) Destroy() {
	var k K
	rec.add("destroy:%s", k.name())
}

func (p tracked[K]) Equal(o tracked[K]) bool {
	rec.compares++
	return p.v == o.v
}

// blob owns a heap buffer and copies it on clone.
type blob struct {
	data *[]byte
}

func newBlob(s string) blob {
	b := []byte(s)
	return blob{data: &b}
}

func (b blob) Clone() (blob, error) {
	if b.data == nil {
		return blob{}, nil
	}
	cp := append([]byte(nil), *b.data...)
	return blob{data: &cp}, nil
}

func (b blob) Equal(o blob) bool {
	if b.data == nil || o.data == nil {
		return b.data == o.data
	}
	return string(*b.data) == string(*o.data)
}

func (b *blob) Destroy() {
	if b.data != nil {
		*b.data = nil
	}
}

type trackedRecord = T3[tracked[tagA], tracked[tagB], tracked[tagC]]

func TestLayout_Int32Float64Int8(t *testing.T) {
	var r T3[int32, float64, int8]
	d := r.Layout()

	if d.Align != 8 {
		t.Skip("float64 is not 8-byte aligned on this platform")
	}
	assert.Equal(t, []uint32{0, 8, 16}, d.Offsets)
	assert.Equal(t, uint32(17), d.End)
	assert.Equal(t, uint32(24), d.Size)
	assert.Equal(t, uintptr(24), unsafe.Sizeof(r))
	assert.Equal(t, uintptr(8), unsafe.Alignof(r))
	require.NoError(t, d.Validate())
}

func TestLayout_Int8Int8(t *testing.T) {
	var r T2[int8, int8]
	d := r.Layout()

	assert.Equal(t, []uint32{0, 1}, d.Offsets)
	assert.Equal(t, uint32(1), d.Align)
	assert.Equal(t, uint32(2), d.Size)
	assert.Equal(t, uintptr(2), unsafe.Sizeof(r))
	assert.Equal(t, 2, r.Len())
}

func TestLayout_MatchesStruct(t *testing.T) {
	type mirror struct {
		a uint8
		b uint64
		c uint16
		d [5]byte
		e float32
	}
	var m mirror
	var r T5[uint8, uint64, uint16, [5]byte, float32]

	d := r.Layout()
	want := []uintptr{
		unsafe.Offsetof(m.a),
		unsafe.Offsetof(m.b),
		unsafe.Offsetof(m.c),
		unsafe.Offsetof(m.d),
		unsafe.Offsetof(m.e),
	}
	for i, w := range want {
		assert.Equal(t, w, uintptr(d.Offsets[i]), "offset %d", i)
	}
	assert.Equal(t, unsafe.Sizeof(m), unsafe.Sizeof(r))
	assert.Equal(t, unsafe.Sizeof(m), uintptr(d.Size))

	base := uintptr(unsafe.Pointer(&r))
	assert.Equal(t, base+want[1], uintptr(unsafe.Pointer(r.At1())))
	assert.Equal(t, base+want[4], uintptr(unsafe.Pointer(r.At4())))
}

func TestEmpty(t *testing.T) {
	var a, b Empty

	require.NoError(t, a.Init())
	require.NoError(t, b.Assign(&a))
	assert.True(t, a.Equal(&b))
	assert.Equal(t, 0, a.Len())

	d := a.Layout()
	assert.Equal(t, uint32(1), d.Align)
	assert.Equal(t, uint32(0), d.Size)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, uintptr(0), unsafe.Sizeof(a))

	a.Destroy()
	b.Destroy()
}

func TestInitWith_RoundTrip(t *testing.T) {
	var r T4[int32, string, float64, bool]
	require.NoError(t, r.InitWith(5, "five", 2.5, true))
	defer r.Destroy()

	assert.Equal(t, int32(5), r.Get0())
	assert.Equal(t, "five", r.Get1())
	assert.Equal(t, 2.5, r.Get2())
	assert.True(t, r.Get3())
}

func TestInit_DefaultValues(t *testing.T) {
	resetRecorder(t)

	var r T4[int64, string, tracked[tagA], tracked[tagB]]
	require.NoError(t, r.Init())

	assert.Equal(t, int64(0), r.Get0())
	assert.Equal(t, "", r.Get1())
	assert.Equal(t, int32(-1), r.At2().v)
	assert.Equal(t, int32(-1), r.At3().v)
	assert.Equal(t, []string{"init:a", "init:b"}, rec.events)

	r.Destroy()
}

func TestAt_MutationIsVisible(t *testing.T) {
	var r T3[int32, float64, int8]
	require.NoError(t, r.InitWith(1, 1.5, 2))

	*r.At1() = 9.25
	*r.At2()++

	assert.Equal(t, 9.25, r.Get1())
	assert.Equal(t, int8(3), r.Get2())
	assert.Equal(t, int32(1), r.Get0())
}

func TestEqual(t *testing.T) {
	var a, b T3[int32, float64, int8]
	require.NoError(t, a.InitWith(5, 2.5, 1))
	require.NoError(t, b.InitWith(5, 2.5, 1))

	assert.True(t, a.Equal(&a), "reflexive")
	assert.True(t, a.Equal(&b))
	assert.True(t, b.Equal(&a))

	for k := 0; k < 3; k++ {
		t.Run(fmt.Sprintf("field_%d", k), func(t *testing.T) {
			var c T3[int32, float64, int8]
			require.NoError(t, c.Assign(&a))
			switch k {
			case 0:
				*c.At0() = 6
			case 1:
				*c.At1() = 3
			case 2:
				*c.At2() = 0
			}
			assert.False(t, a.Equal(&c))
			assert.False(t, c.Equal(&a))
		})
	}
}

func TestEqual_ShortCircuits(t *testing.T) {
	resetRecorder(t)

	var a, b trackedRecord
	require.NoError(t, a.InitWith(tracked[tagA]{v: 1}, tracked[tagB]{v: 2}, tracked[tagC]{v: 3}))
	require.NoError(t, b.InitWith(tracked[tagA]{v: 9}, tracked[tagB]{v: 2}, tracked[tagC]{v: 3}))

	rec.compares = 0
	assert.False(t, a.Equal(&b))
	assert.Equal(t, 1, rec.compares)

	*b.At0() = tracked[tagA]{v: 1}
	rec.compares = 0
	assert.True(t, a.Equal(&b))
	assert.Equal(t, 3, rec.compares)
}

func TestDestroy_ForwardOrderOnce(t *testing.T) {
	resetRecorder(t)

	var r trackedRecord
	require.NoError(t, r.Init())
	rec.events = nil

	r.Destroy()
	assert.Equal(t, []string{"destroy:a", "destroy:b", "destroy:c"}, rec.events)
}

func TestInit_UnwindsOnFailure(t *testing.T) {
	resetRecorder(t)
	rec.failInit = "b"

	var r trackedRecord
	err := r.Init()
	require.ErrorIs(t, err, errInit)
	assert.Same(t, errInit, err, "field errors are returned unchanged")

	assert.Equal(t, []string{"init:a", "init:b", "destroy:a"}, rec.events)
	assert.Equal(t, int32(0), r.At0().v)
	assert.Equal(t, int32(0), r.At1().v)
}

func TestInitWith_UnwindsOnFailure(t *testing.T) {
	resetRecorder(t)
	rec.failClone = "c"

	var r trackedRecord
	err := r.InitWith(tracked[tagA]{v: 1}, tracked[tagB]{v: 2}, tracked[tagC]{v: 3})
	require.ErrorIs(t, err, errClone)

	assert.Equal(t, []string{"clone:a", "clone:b", "clone:c", "destroy:a", "destroy:b"}, rec.events)
}

func TestAssign_Self(t *testing.T) {
	resetRecorder(t)

	var r trackedRecord
	require.NoError(t, r.InitWith(tracked[tagA]{v: 1}, tracked[tagB]{v: 2}, tracked[tagC]{v: 3}))
	rec.events = nil

	require.NoError(t, r.Assign(&r))
	assert.Empty(t, rec.events, "self-assignment must not destroy or copy")
	assert.Equal(t, int32(1), r.At0().v)
	assert.Equal(t, int32(2), r.At1().v)
	assert.Equal(t, int32(3), r.At2().v)
}

func TestAssign_DestroysThenCopies(t *testing.T) {
	resetRecorder(t)

	var src, dst trackedRecord
	require.NoError(t, src.InitWith(tracked[tagA]{v: 1}, tracked[tagB]{v: 2}, tracked[tagC]{v: 3}))
	require.NoError(t, dst.Init())
	rec.events = nil

	require.NoError(t, dst.Assign(&src))
	assert.Equal(t, []string{
		"destroy:a", "destroy:b", "destroy:c",
		"clone:a", "clone:b", "clone:c",
	}, rec.events)
	assert.True(t, dst.Equal(&src))
}

func TestAssign_FailureLeavesDestroyed(t *testing.T) {
	resetRecorder(t)

	var src, dst trackedRecord
	require.NoError(t, src.InitWith(tracked[tagA]{v: 1}, tracked[tagB]{v: 2}, tracked[tagC]{v: 3}))
	require.NoError(t, dst.InitWith(tracked[tagA]{v: 7}, tracked[tagB]{v: 8}, tracked[tagC]{v: 9}))
	rec.events = nil
	rec.failClone = "b"

	err := dst.Assign(&src)
	require.ErrorIs(t, err, errClone)
	assert.Equal(t, []string{
		"destroy:a", "destroy:b", "destroy:c",
		"clone:a", "clone:b", "destroy:a",
	}, rec.events)
	assert.Equal(t, int32(0), dst.At0().v)
	assert.Equal(t, int32(0), dst.At1().v)
	assert.Equal(t, int32(0), dst.At2().v)
}

func TestAssign_Independent(t *testing.T) {
	var src, dst T2[int32, float64]
	require.NoError(t, src.InitWith(5, 2.5))
	require.NoError(t, dst.Init())

	require.NoError(t, dst.Assign(&src))
	assert.True(t, dst.Equal(&src))
	assert.Equal(t, int32(5), dst.Get0())
	assert.Equal(t, 2.5, dst.Get1())

	*src.At0() = 7
	*src.At1() = 0.5
	assert.Equal(t, int32(5), dst.Get0())
	assert.Equal(t, 2.5, dst.Get1())
	assert.False(t, dst.Equal(&src))
}

func TestAssign_ClonesResources(t *testing.T) {
	var src, dst T2[blob, int]
	require.NoError(t, src.InitWith(newBlob("hello"), 1))
	require.NoError(t, dst.Init())

	require.NoError(t, dst.Assign(&src))
	require.True(t, dst.Equal(&src))
	assert.NotSame(t, src.Get0().data, dst.Get0().data)

	(*src.At0().data)[0] = 'j'
	assert.Equal(t, "hello", string(*dst.Get0().data))
	assert.False(t, dst.Equal(&src))

	src.Destroy()
	assert.Equal(t, "hello", string(*dst.Get0().data))
	dst.Destroy()
}

func TestStorage_KeepsPointersAlive(t *testing.T) {
	var s T2[*int, string]
	fill := func() {
		n := new(int)
		*n = 42
		require.NoError(t, s.InitWith(n, fmt.Sprintf("value-%d", *n)))
	}
	fill()

	runtime.GC()
	runtime.GC()

	require.NotNil(t, s.Get0())
	assert.Equal(t, 42, *s.Get0())
	assert.Equal(t, "value-42", s.Get1())

	s.Destroy()
	assert.Nil(t, s.Get0())
	assert.Equal(t, "", s.Get1())
}

func TestT8_RoundTrip(t *testing.T) {
	var r T8[int8, int16, int32, int64, uint8, float32, float64, bool]
	require.NoError(t, r.InitWith(1, 2, 3, 4, 5, 6.5, 7.25, true))

	assert.Equal(t, int8(1), r.Get0())
	assert.Equal(t, int16(2), r.Get1())
	assert.Equal(t, int32(3), r.Get2())
	assert.Equal(t, int64(4), r.Get3())
	assert.Equal(t, uint8(5), r.Get4())
	assert.Equal(t, float32(6.5), r.Get5())
	assert.Equal(t, 7.25, r.Get6())
	assert.True(t, r.Get7())
	assert.Equal(t, 8, r.Len())

	d := r.Layout()
	require.NoError(t, d.Validate())
	assert.Equal(t, uintptr(d.Size), unsafe.Sizeof(r))
}

func TestEqual_NestedRecord(t *testing.T) {
	var a, b T2[int32, float64]
	require.NoError(t, a.InitWith(1, 2))
	require.NoError(t, b.InitWith(1, 3))

	assert.False(t, EqualField(&a, &b))
	*b.At1() = 2
	assert.True(t, EqualField(&a, &b))
}

func TestFieldOps_NoHooks(t *testing.T) {
	var x int
	require.NoError(t, InitField(&x))
	assert.Equal(t, 0, x)

	require.NoError(t, CopyField(&x, 3))
	assert.Equal(t, 3, x)

	y := 3
	assert.True(t, EqualField(&x, &y))

	DestroyField(&x)
	assert.Equal(t, 0, x)
}

func TestLayout_MatchesStorage(t *testing.T) {
	var a T3[int32, float64, int8]
	da := a.Layout()
	assert.Equal(t, []uintptr{
		unsafe.Offsetof(a.slots.f0),
		unsafe.Offsetof(a.slots.f1),
		unsafe.Offsetof(a.slots.f2),
	}, []uintptr{uintptr(da.Offsets[0]), uintptr(da.Offsets[1]), uintptr(da.Offsets[2])})
	assert.Equal(t, unsafe.Sizeof(a.slots), uintptr(da.Size))

	var b T4[uint16, [3]byte, uint64, bool]
	db := b.Layout()
	assert.Equal(t, []uintptr{
		unsafe.Offsetof(b.slots.f0),
		unsafe.Offsetof(b.slots.f1),
		unsafe.Offsetof(b.slots.f2),
		unsafe.Offsetof(b.slots.f3),
	}, []uintptr{uintptr(db.Offsets[0]), uintptr(db.Offsets[1]), uintptr(db.Offsets[2]), uintptr(db.Offsets[3])})
	assert.Equal(t, unsafe.Sizeof(b), uintptr(db.Size))
}

func TestLayout_ZeroSizeFields(t *testing.T) {
	var trailing T2[int64, struct{}]
	d := trailing.Layout()
	require.NoError(t, d.Validate())
	assert.Equal(t, []uint32{0, 8}, d.Offsets)
	assert.Equal(t, uint32(8), d.End)
	assert.Equal(t, unsafe.Sizeof(trailing), uintptr(d.Size))
	assert.Equal(t, uintptr(unsafe.Pointer(&trailing))+8, uintptr(unsafe.Pointer(trailing.At1())))

	var leading T2[struct{}, int64]
	d = leading.Layout()
	assert.Equal(t, uint32(8), d.Size)
	assert.Equal(t, unsafe.Sizeof(leading), uintptr(d.Size))

	var middle T3[int8, struct{}, int8]
	d = middle.Layout()
	assert.Equal(t, unsafe.Sizeof(middle), uintptr(d.Size))

	var only T1[struct{}]
	d = only.Layout()
	assert.Equal(t, uint32(0), d.Size)
	assert.Equal(t, unsafe.Sizeof(only), uintptr(d.Size))

	require.NoError(t, trailing.InitWith(5, struct{}{}))
	assert.Equal(t, int64(5), trailing.Get0())
	trailing.Destroy()
}

func TestScalarRecord_DoesNotAllocate(t *testing.T) {
	ops := []struct {
		name string
		fn   func()
	}{
		{"InitWith", func() {
			var r T2[int32, float64]
			_ = r.InitWith(1, 2)
		}},
		{"Init", func() {
			var r T3[int8, uint64, float32]
			_ = r.Init()
		}},
		{"Destroy", func() {
			var r T2[int32, float64]
			_ = r.InitWith(1, 2)
			r.Destroy()
		}},
		{"Assign", func() {
			var r, s T2[int32, float64]
			_ = r.InitWith(1, 2)
			_ = s.Assign(&r)
		}},
		{"Equal", func() {
			var r, s T2[int32, float64]
			_ = r.InitWith(1, 2)
			_ = s.InitWith(1, 2)
			if !r.Equal(&s) {
				panic("records differ")
			}
		}},
		{"At", func() {
			var r T2[int32, float64]
			*r.At1() = 4
			_ = r.Get1()
		}},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			assert.Zero(t, testing.AllocsPerRun(100, op.fn))
		})
	}
}

func TestHooks_RunOnFieldValue(t *testing.T) {
	resetRecorder(t)

	var r trackedRecord
	require.NoError(t, r.Init())
	assert.Equal(t, int32(-1), r.Get1().v)

	b := newBlob("x")
	var s T1[blob]
	require.NoError(t, s.InitWith(b))
	data := s.Get0().data
	s.Destroy()
	assert.Nil(t, *data)
	assert.Nil(t, s.Get0().data)
	assert.Equal(t, "x", string(*b.data))
}
