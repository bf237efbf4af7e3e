package layout

import (
	"fmt"

	"github.com/wippyai/tuple/errors"
	"go.bytecodealliance.org/wit"
)

// WITCalculator computes Canonical ABI layouts of WIT types.
// It is not safe for concurrent use.
type WITCalculator struct {
	cache map[*wit.TypeDef]Info
}

func NewWITCalculator() *WITCalculator {
	return &WITCalculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

func (c *WITCalculator) Calculate(t wit.Type) Info {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return Info{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return Info{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return Info{Size: 8, Align: 8}
	case wit.String:
		return Info{Size: 8, Align: 4} // [ptr: u32, len: u32]
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	default:
		return Info{Size: 0, Align: 1}
	}
}

// Describe returns the per-field layout of a record or tuple.
func (c *WITCalculator) Describe(t wit.Type) (Descriptor, error) {
	def, ok := t.(*wit.TypeDef)
	if !ok {
		return Descriptor{}, errors.New(errors.PhaseLayout, errors.KindUnsupported).
			WitType(witName(t)).
			Detail("only record and tuple types have field offsets").
			Build()
	}
	switch kind := def.Kind.(type) {
	case *wit.Record:
		fields := make([]Info, len(kind.Fields))
		for i, f := range kind.Fields {
			fields[i] = c.Calculate(f.Type)
		}
		return Calculate(fields...), nil
	case *wit.Tuple:
		return Calculate(c.infos(kind.Types)...), nil
	case wit.Type:
		return c.Describe(kind)
	default:
		return Descriptor{}, errors.New(errors.PhaseLayout, errors.KindUnsupported).
			WitType(witName(t)).
			Detail("only record and tuple types have field offsets").
			Build()
	}
}

func (c *WITCalculator) infos(types []wit.Type) []Info {
	out := make([]Info, len(types))
	for i, typ := range types {
		out[i] = c.Calculate(typ)
	}
	return out
}

func (c *WITCalculator) calculateTypeDef(t *wit.TypeDef) Info {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	var info Info

	switch kind := t.Kind.(type) {
	case *wit.Record:
		fields := make([]Info, len(kind.Fields))
		for i, f := range kind.Fields {
			fields[i] = c.Calculate(f.Type)
		}
		info = c.aggregate(fields)
	case *wit.Tuple:
		info = c.aggregate(c.infos(kind.Types))
	case *wit.Variant:
		info = c.calculateVariant(kind)
	case *wit.Enum:
		size := discriminantSize(len(kind.Cases))
		info = Info{Size: size, Align: size}
	case *wit.List:
		info = Info{Size: 8, Align: 4}
	case *wit.Option:
		info = c.calculateOption(kind)
	case *wit.Result:
		info = c.calculateResult(kind)
	case *wit.Flags:
		info = calculateFlags(len(kind.Flags))
	case wit.Type:
		info = c.Calculate(kind)
	default:
		info = Info{Size: 0, Align: 1}
	}

	c.cache[t] = info
	return info
}

func (c *WITCalculator) aggregate(fields []Info) Info {
	d := Calculate(fields...)
	return Info{Size: d.Size, Align: d.Align}
}

func (c *WITCalculator) calculateVariant(v *wit.Variant) Info {
	if len(v.Cases) == 0 {
		return Info{Size: 0, Align: 1}
	}

	discSize := discriminantSize(len(v.Cases))

	maxAlign := discSize
	maxSize := uint32(0)

	for _, cs := range v.Cases {
		if cs.Type != nil {
			caseLayout := c.Calculate(cs.Type)
			maxAlign = max(maxAlign, caseLayout.Align)
			maxSize = max(maxSize, caseLayout.Size)
		}
	}

	payloadOffset := AlignTo(discSize, maxAlign)
	return Info{
		Size:  AlignTo(payloadOffset+maxSize, maxAlign),
		Align: maxAlign,
	}
}

func (c *WITCalculator) calculateOption(o *wit.Option) Info {
	inner := c.Calculate(o.Type)
	maxAlign := max(inner.Align, 1)

	payloadOffset := AlignTo(1, maxAlign)
	return Info{
		Size:  AlignTo(payloadOffset+inner.Size, maxAlign),
		Align: maxAlign,
	}
}

func (c *WITCalculator) calculateResult(r *wit.Result) Info {
	ok := Info{Align: 1}
	if r.OK != nil {
		ok = c.Calculate(r.OK)
	}
	fail := Info{Align: 1}
	if r.Err != nil {
		fail = c.Calculate(r.Err)
	}

	maxAlign := max(ok.Align, fail.Align)
	payloadOffset := AlignTo(1, maxAlign)
	return Info{
		Size:  AlignTo(payloadOffset+max(ok.Size, fail.Size), maxAlign),
		Align: maxAlign,
	}
}

func calculateFlags(n int) Info {
	switch {
	case n == 0:
		return Info{Size: 0, Align: 1}
	case n <= 8:
		return Info{Size: 1, Align: 1}
	case n <= 16:
		return Info{Size: 2, Align: 2}
	case n <= 32:
		return Info{Size: 4, Align: 4}
	case n <= 64:
		return Info{Size: 8, Align: 8}
	}
	// >64 flags: multiple u32s
	return Info{Size: uint32((n+31)/32) * 4, Align: 4}
}

func discriminantSize(numCases int) uint32 {
	switch {
	case numCases <= 256:
		return 1
	case numCases <= 65536:
		return 2
	}
	return 4
}

func witName(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}
