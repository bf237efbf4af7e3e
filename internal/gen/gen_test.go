package gen

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wippyai/tuple/errors"
	"go.uber.org/multierr"
)

const sampleYAML = `
package: sample
records:
  - name: Sample
    doc: Sample is a test record.
    fields:
      - {name: id, type: s32}
      - {name: score, type: f64}
      - {name: flag, type: s8}
  - name: Pair
    fields:
      - {name: first, type: int8}
      - {name: second, type: int8}
`

func kindOf(err error) errors.Kind {
	if e, ok := err.(*errors.Error); ok {
		return e.Kind
	}
	return ""
}

func sampleConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := ParseConfig([]byte(sampleYAML))
	require.NoError(t, err)
	cfg.FillDefaults("")
	return cfg
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", cfg.Package)
	require.Len(t, cfg.Records, 2)
	assert.Equal(t, "Sample", cfg.Records[0].Name)
	assert.Equal(t, []Field{{"id", "s32"}, {"score", "f64"}, {"flag", "s8"}}, cfg.Records[0].Fields)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, errors.KindNotFound, kindOf(err))
}

func TestParseConfig_UnknownKey(t *testing.T) {
	_, err := ParseConfig([]byte("package: x\nrecord: []\n"))
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidInput, kindOf(err))
}

func TestFillDefaults(t *testing.T) {
	cfg := &Config{Records: []Record{{Name: "Point"}, {Name: "Kept", Doc: "Kept has docs."}}}
	cfg.FillDefaults(filepath.Join(t.TempDir(), "points"))

	assert.Equal(t, "points", cfg.Package)
	assert.Equal(t, "Point is a fixed-layout record.", cfg.Records[0].Doc)
	assert.Equal(t, "Kept has docs.", cfg.Records[1].Doc)

	cfg = &Config{Package: "explicit"}
	cfg.FillDefaults("elsewhere")
	assert.Equal(t, "explicit", cfg.Package)
}

func TestValidate(t *testing.T) {
	require.NoError(t, sampleConfig(t).Validate())

	cfg := &Config{
		Package: "not-a-package",
		Records: []Record{
			{Name: "ok", Fields: []Field{{"a", "u8"}}},
			{Name: "Dup", Fields: []Field{{"a", "u8"}}},
			{Name: "Dup", Fields: []Field{{"a", "u8"}}},
			{Name: "Empty"},
			{Name: "Bad", Fields: []Field{
				{"", "u8"},
				{"x", "string"},
				{"x", "u16"},
				{"func", "u32"},
			}},
		},
	}
	err := cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	kinds := make([]errors.Kind, len(errs))
	for i, e := range errs {
		kinds[i] = kindOf(e)
	}
	assert.Equal(t, []errors.Kind{
		errors.KindInvalidInput, // package
		errors.KindInvalidInput, // ok is unexported
		errors.KindDuplicate,    // Dup
		errors.KindInvalidInput, // Empty has no fields
		errors.KindInvalidInput, // empty field name
		errors.KindUnknownType,  // string
		errors.KindDuplicate,    // x
		errors.KindInvalidInput, // func
	}, kinds)

	err = (&Config{Package: "p"}).Validate()
	assert.Len(t, multierr.Errors(err), 1)
}

func TestPlan(t *testing.T) {
	cfg := sampleConfig(t)

	p, err := Plan(cfg.Records[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(24), p.Layout.Size)
	assert.Equal(t, uint32(8), p.Layout.Align)
	assert.Equal(t, "float64", p.AlignType)
	offsets := []uint32{}
	for _, f := range p.Fields {
		offsets = append(offsets, f.Offset)
	}
	assert.Equal(t, []uint32{0, 8, 16}, offsets)
	assert.Equal(t, uint32(4), p.Fields[1].Padding)
	assert.Equal(t, "Score", p.Fields[1].Export)

	p, err = Plan(cfg.Records[1])
	require.NoError(t, err)
	assert.Equal(t, uint32(2), p.Layout.Size)
	assert.Equal(t, uint32(1), p.Layout.Align)
	assert.Equal(t, "int8", p.AlignType)
	assert.Equal(t, uint32(1), p.Fields[1].Offset)
}

func TestPlan_Names(t *testing.T) {
	p, err := Plan(Record{Name: "R", Fields: []Field{
		{"max_len", "u32"},
		{"r", "u8"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "MaxLen", p.Fields[0].Export)
	assert.Equal(t, "max_len", p.Fields[0].Param)
	assert.Equal(t, "r_", p.Fields[1].Param)

	_, err = Plan(Record{Name: "R", Fields: []Field{{"max_len", "u32"}, {"maxLen", "u32"}}})
	assert.Equal(t, errors.KindDuplicate, kindOf(err))

	_, err = Plan(Record{Name: "R", Fields: []Field{{"a", "usize"}}})
	assert.Equal(t, errors.KindUnknownType, kindOf(err))

	_, err = Plan(Record{Name: "R"})
	assert.Equal(t, errors.KindInvalidInput, kindOf(err))
}

func TestGenerateRecords(t *testing.T) {
	src, err := GenerateRecords(sampleConfig(t))
	require.NoError(t, err)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "records_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "sample", file.Name.Name)

	methods := map[string]bool{}
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv != nil {
			recv := fn.Recv.List[0].Type.(*ast.StarExpr).X.(*ast.Ident).Name
			methods[recv+"."+fn.Name.Name] = true
		}
	}
	for _, m := range []string{
		"Sample.Len", "Sample.Layout", "Sample.Bytes", "Sample.Init", "Sample.InitWith",
		"Sample.Destroy", "Sample.Assign", "Sample.Equal",
		"Sample.At0", "Sample.At1", "Sample.At2", "Sample.Get0", "Sample.Get1", "Sample.Get2",
		"Pair.At1", "Pair.Get1", "Pair.Equal",
	} {
		assert.True(t, methods[m], "missing method %s", m)
	}

	text := string(src)
	assert.Contains(t, text, "// Code generated by recordgen. DO NOT EDIT.")
	assert.Contains(t, text, "// Sample is a test record.\ntype Sample struct {")
	assert.Contains(t, text, "// Pair is a fixed-layout record.")
	assert.Regexp(t, regexp.MustCompile(`SampleSize\s+= 24`), text)
	assert.Regexp(t, regexp.MustCompile(`SampleOffsetScore\s+= 8`), text)
	assert.Regexp(t, regexp.MustCompile(`PairSize\s+= 2`), text)
	assert.Contains(t, text, "_   [0]float64")
	assert.Contains(t, text, "func (r *Sample) At1() *float64 { return (*float64)(unsafe.Pointer(&r.buf[SampleOffsetScore])) }")
	assert.Contains(t, text, "func (r *Sample) InitWith(id int32, score float64, flag int8) error {")
}

func TestGenerateRecords_Invalid(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.Records[1].Fields[0].Type = "string"
	_, err := GenerateRecords(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.KindUnknownType, kindOf(err))
}

func TestGenerateArity(t *testing.T) {
	got, err := GenerateArity(8)
	require.NoError(t, err)

	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "tuple_gen.go"))
	require.NoError(t, err)
	want, err := format.Source(checkedIn)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "tuple_gen.go is stale; run go generate")
}

func TestGenerateArity_Bounds(t *testing.T) {
	for _, n := range []int{0, -1, MaxArity + 1} {
		_, err := GenerateArity(n)
		assert.Equal(t, errors.KindOutOfBounds, kindOf(err), "arity %d", n)
	}

	src, err := GenerateArity(MaxArity)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err)
}

func TestGenerateRecords_Sample(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "sample")
	cfg, err := LoadConfig(filepath.Join(dir, "records.yaml"))
	require.NoError(t, err)
	cfg.FillDefaults(dir)

	got, err := GenerateRecords(cfg)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(dir, "records_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "records_gen.go is stale; run go generate")
}
