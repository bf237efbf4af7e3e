package gen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wippyai/tuple/errors"
	"github.com/wippyai/tuple/internal/scalar"
	"github.com/wippyai/tuple/layout"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"
)

// FieldPlan is a resolved field.
type FieldPlan struct {
	Type scalar.Type
	Name string
	// Export is the field name in exported form, used in constant names.
	Export string
	// Param is the InitWith parameter name.
	Param   string
	Offset  uint32
	Padding uint32
}

// RecordPlan is a record with its layout fixed.
type RecordPlan struct {
	Name   string
	Doc    string
	Fields []FieldPlan
	Layout layout.Descriptor
	// AlignType is the Go type whose alignment the record buffer borrows.
	AlignType string
}

// receiver is the receiver name used by generated methods.
const receiver = "r"

// Plan resolves field types and computes the record layout. The layout is
// derived from the scalar sizes and cross-checked against the Canonical ABI
// layout of the equivalent WIT record.
func Plan(r Record) (*RecordPlan, error) {
	if len(r.Fields) == 0 {
		return nil, errors.InvalidInput(errors.PhaseGenerate, []string{r.Name}, "record has no fields")
	}

	p := &RecordPlan{
		Name:   r.Name,
		Doc:    r.Doc,
		Fields: make([]FieldPlan, len(r.Fields)),
	}
	infos := make([]layout.Info, len(r.Fields))
	witFields := make([]wit.Field, len(r.Fields))
	exports := make(map[string]string, len(r.Fields))
	params := make(map[string]bool, len(r.Fields)+1)
	params[receiver] = true
	for _, f := range r.Fields {
		params[f.Name] = true
	}

	for i, f := range r.Fields {
		typ, ok := scalar.Lookup(f.Type)
		if !ok {
			return nil, errors.UnknownType(errors.PhaseGenerate, []string{r.Name, f.Name}, f.Type)
		}
		export := exportName(f.Name)
		if prev, dup := exports[export]; dup {
			return nil, errors.New(errors.PhaseGenerate, errors.KindDuplicate).
				Path(r.Name, f.Name).
				Detail("fields %q and %q both export as %s", prev, f.Name, export).
				Build()
		}
		exports[export] = f.Name

		param := f.Name
		if param == receiver {
			for params[param] {
				param += "_"
			}
			params[param] = true
		}

		p.Fields[i] = FieldPlan{Type: typ, Name: f.Name, Export: export, Param: param}
		infos[i] = typ.Info
		witFields[i] = wit.Field{Name: f.Name, Type: typ.Wit}
	}

	d := layout.Calculate(infos...)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := crossCheck(r.Name, d, witFields); err != nil {
		return nil, err
	}
	p.Layout = d

	widest := 0
	for i := range p.Fields {
		p.Fields[i].Offset = d.Offset(i)
		p.Fields[i].Padding = d.Padding(i)
		if d.Fields[i].Align > d.Fields[widest].Align {
			widest = i
		}
	}
	p.AlignType = p.Fields[widest].Type.GoType

	Logger().Debug("planned record",
		zap.String("record", r.Name),
		zap.Int("fields", len(p.Fields)),
		zap.Uint32("size", d.Size),
		zap.Uint32("align", d.Align))
	return p, nil
}

func crossCheck(name string, d layout.Descriptor, fields []wit.Field) error {
	typeName := name
	def := &wit.TypeDef{Name: &typeName, Kind: &wit.Record{Fields: fields}}
	w, err := layout.NewWITCalculator().Describe(def)
	if err != nil {
		return err
	}
	if w.Size != d.Size || w.Align != d.Align {
		return errors.New(errors.PhaseLayout, errors.KindInvalidData).
			Path(name).
			WitType(name).
			Detail("canonical layout %d/%d differs from %d/%d", w.Size, w.Align, d.Size, d.Align).
			Build()
	}
	for i := range d.Offsets {
		if w.Offsets[i] != d.Offsets[i] {
			return errors.New(errors.PhaseLayout, errors.KindInvalidData).
				Path(name, fields[i].Name).
				WitType(name).
				Detail("canonical offset %d differs from %d", w.Offsets[i], d.Offsets[i]).
				Build()
		}
	}
	return nil
}

// exportName converts snake_case or camelCase to an exported identifier.
func exportName(s string) string {
	var b strings.Builder
	upper := true
	for _, c := range s {
		if c == '_' {
			upper = true
			continue
		}
		if upper {
			c = unicode.ToUpper(c)
			upper = false
		}
		b.WriteRune(c)
	}
	if b.Len() == 0 {
		return fmt.Sprintf("X%d", len(s))
	}
	return b.String()
}
