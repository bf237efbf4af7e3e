// Package scalar lists the fixed-size field types a generated record may
// hold, keyed by WIT name and by Go alias.
package scalar

import (
	"sort"

	"github.com/wippyai/tuple/layout"
	"go.bytecodealliance.org/wit"
)

// Type is one scalar field type.
type Type struct {
	Wit    wit.Type
	Name   string // WIT name
	GoType string
	// Accessor is the memio.View method suffix that reads the type's bits.
	Accessor string
	Info     layout.Info
	Signed   bool
	Float    bool
}

var types = []Type{
	{Name: "bool", GoType: "bool", Wit: wit.Bool{}, Accessor: "U8"},
	{Name: "u8", GoType: "uint8", Wit: wit.U8{}, Accessor: "U8"},
	{Name: "s8", GoType: "int8", Wit: wit.S8{}, Accessor: "U8", Signed: true},
	{Name: "u16", GoType: "uint16", Wit: wit.U16{}, Accessor: "U16"},
	{Name: "s16", GoType: "int16", Wit: wit.S16{}, Accessor: "U16", Signed: true},
	{Name: "u32", GoType: "uint32", Wit: wit.U32{}, Accessor: "U32"},
	{Name: "s32", GoType: "int32", Wit: wit.S32{}, Accessor: "U32", Signed: true},
	{Name: "u64", GoType: "uint64", Wit: wit.U64{}, Accessor: "U64"},
	{Name: "s64", GoType: "int64", Wit: wit.S64{}, Accessor: "U64", Signed: true},
	{Name: "f32", GoType: "float32", Wit: wit.F32{}, Accessor: "F32", Float: true},
	{Name: "f64", GoType: "float64", Wit: wit.F64{}, Accessor: "F64", Float: true},
	{Name: "char", GoType: "rune", Wit: wit.Char{}, Accessor: "U32"},
}

var aliases = map[string]string{
	"uint8":   "u8",
	"byte":    "u8",
	"int8":    "s8",
	"uint16":  "u16",
	"int16":   "s16",
	"uint32":  "u32",
	"int32":   "s32",
	"uint64":  "u64",
	"int64":   "s64",
	"float32": "f32",
	"float64": "f64",
	"rune":    "char",
}

var byName map[string]int

func init() {
	calc := layout.NewWITCalculator()
	byName = make(map[string]int, len(types)+len(aliases))
	for i := range types {
		types[i].Info = calc.Calculate(types[i].Wit)
		byName[types[i].Name] = i
	}
	for alias, name := range aliases {
		byName[alias] = byName[name]
	}
}

// Lookup resolves a WIT name or Go alias.
func Lookup(name string) (Type, bool) {
	i, ok := byName[name]
	if !ok {
		return Type{}, false
	}
	return types[i], true
}

// Names returns every accepted type name, sorted.
func Names() []string {
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// All returns the scalar types in declaration order.
func All() []Type {
	return append([]Type(nil), types...)
}
