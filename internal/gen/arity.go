package gen

import (
	"fmt"
	"strings"

	"github.com/wippyai/tuple/errors"
	"go.uber.org/zap"
)

// MaxArity is the largest container GenerateArity emits.
const MaxArity = 16

// GenerateArity returns the source of the generic containers T1..Tn of
// package tuple.
func GenerateArity(n int) ([]byte, error) {
	if n < 1 || n > MaxArity {
		return nil, errors.New(errors.PhaseGenerate, errors.KindOutOfBounds).
			Value(n).
			Detail("arity %d outside [1, %d]", n, MaxArity).
			Build()
	}

	var code strings.Builder
	fmt.Fprintf(&code, "// Code generated by recordgen -arity %d. DO NOT EDIT.\n\n", n)
	fmt.Fprintf(&code, "package tuple\n\nimport %q\n", layoutImport)
	for i := 1; i <= n; i++ {
		writeContainer(&code, i)
	}

	src, err := formatSource(code.String())
	if err != nil {
		return nil, err
	}
	Logger().Info("generated containers", zap.Int("arity", n), zap.Int("bytes", len(src)))
	return src, nil
}

func writeContainer(code *strings.Builder, n int) {
	params := make([]string, n)
	for i := range params {
		params[i] = string(rune('A' + i))
	}
	list := strings.Join(params, ", ")
	typ := fmt.Sprintf("T%d[%s]", n, list)
	recv := fmt.Sprintf("(t *%s)", typ)

	plural := "s"
	if n == 1 {
		plural = ""
	}
	fmt.Fprintf(code, "\n// T%d is a record of %d field%s.\ntype T%d[%s comparable] struct {\n\t_     noCopy\n\tslots struct {\n",
		n, n, plural, n, list)
	for i, p := range params {
		fmt.Fprintf(code, "\t\tf%d %s\n", i, p)
	}
	code.WriteString("\t}\n}\n")

	fmt.Fprintf(code, "\n// Len returns the number of fields.\nfunc %s Len() int { return %d }\n", recv, n)

	infos := make([]string, n)
	for i, p := range params {
		infos[i] = fmt.Sprintf("layout.Of[%s]()", p)
	}
	fmt.Fprintf(code, "\nfunc %s fields() [%d]layout.Info {\n\treturn [%d]layout.Info{%s}\n}\n",
		recv, n, n, strings.Join(infos, ", "))
	fmt.Fprintf(code, "\n// Layout returns the record's layout descriptor.\nfunc %s Layout() layout.Descriptor {\n\tfs := t.fields()\n\treturn layout.CalculateHost(fs[:]...)\n}\n", recv)

	for i, p := range params {
		fmt.Fprintf(code, "\n// At%d returns a pointer to field %d.\nfunc %s At%d() *%s { return &t.slots.f%d }\n",
			i, i, recv, i, p, i)
		fmt.Fprintf(code, "\n// Get%d returns a copy of field %d.\nfunc %s Get%d() %s { return *t.At%d() }\n",
			i, i, recv, i, p, i)
	}

	steps := func(call func(i int) string) string {
		var s strings.Builder
		for i := 0; i < n; i++ {
			fmt.Fprintf(&s, "\tif err := %s; err != nil {\n", call(i))
			if i > 0 {
				fmt.Fprintf(&s, "\t\tt.unwind(%d)\n", i)
			}
			s.WriteString("\t\treturn err\n\t}\n")
		}
		return s.String()
	}

	fmt.Fprintf(code, "\n// Init default-constructs every field in order.\nfunc %s Init() error {\n%s\treturn nil\n}\n",
		recv, steps(func(i int) string { return fmt.Sprintf("InitField(t.At%d())", i) }))

	args := make([]string, n)
	for i, p := range params {
		args[i] = strings.ToLower(p) + " " + p
	}
	fmt.Fprintf(code, "\n// InitWith constructs every field from the given values in order.\nfunc %s InitWith(%s) error {\n%s\treturn nil\n}\n",
		recv, strings.Join(args, ", "),
		steps(func(i int) string { return fmt.Sprintf("CopyField(t.At%d(), %s)", i, strings.ToLower(params[i])) }))

	fmt.Fprintf(code, "\n// Destroy destroys every field in order.\nfunc %s Destroy() {\n\tt.unwind(%d)\n}\n", recv, n)

	fmt.Fprintf(code, "\n// unwind destroys fields [0, n) in order.\nfunc %s unwind(n int) {\n", recv)
	for i := 0; i < n; i++ {
		fmt.Fprintf(code, "\tif n > %d {\n\t\tDestroyField(t.At%d())\n\t}\n", i, i)
	}
	code.WriteString("}\n")

	fmt.Fprintf(code, "\n// Assign replaces t's fields with copies of src's fields. Assigning a\n// record to itself does nothing. On failure t is left destroyed.\nfunc %s Assign(src *%s) error {\n\tif t == src {\n\t\treturn nil\n\t}\n\tt.Destroy()\n%s\treturn nil\n}\n",
		recv, typ, steps(func(i int) string { return fmt.Sprintf("CopyField(t.At%d(), src.Get%d())", i, i) }))

	eq := make([]string, n)
	for i := range eq {
		eq[i] = fmt.Sprintf("EqualField(t.At%d(), o.At%d())", i, i)
	}
	fmt.Fprintf(code, "\n// Equal reports whether every field of t equals the same field of o.\nfunc %s Equal(o *%s) bool {\n\treturn %s\n}\n",
		recv, typ, strings.Join(eq, " &&\n\t\t"))
}
