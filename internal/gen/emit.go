package gen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/wippyai/tuple/errors"
	"go.uber.org/zap"
)

const layoutImport = "github.com/wippyai/tuple/layout"

// GenerateRecords validates cfg and returns formatted Go source declaring
// every record it describes.
func GenerateRecords(cfg *Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plans := make([]*RecordPlan, len(cfg.Records))
	for i, r := range cfg.Records {
		p, err := Plan(r)
		if err != nil {
			return nil, err
		}
		plans[i] = p
	}

	var code strings.Builder
	code.WriteString("// Code generated by recordgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&code, "package %s\n\n", cfg.Package)
	fmt.Fprintf(&code, "import (\n\t\"unsafe\"\n\n\t%q\n)\n", layoutImport)
	for _, p := range plans {
		writeRecord(&code, p)
	}

	src, err := formatSource(code.String())
	if err != nil {
		return nil, err
	}
	Logger().Info("generated records",
		zap.String("package", cfg.Package),
		zap.Int("records", len(plans)),
		zap.Int("bytes", len(src)))
	return src, nil
}

func formatSource(src string) ([]byte, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "format generated source")
	}
	return out, nil
}

func writeRecord(code *strings.Builder, p *RecordPlan) {
	name := p.Name
	d := p.Layout
	size := name + "Size"

	doc := strings.TrimSpace(p.Doc)
	if doc == "" {
		doc = name + " is a fixed-layout record."
	}
	code.WriteString("\n")
	for _, line := range strings.Split(doc, "\n") {
		fmt.Fprintf(code, "// %s\n", strings.TrimSpace(line))
	}
	fmt.Fprintf(code, "type %s struct {\n\t_   [0]%s\n\tbuf [%s]byte\n}\n", name, p.AlignType, size)

	fmt.Fprintf(code, "\n// Layout of %s.\nconst (\n", name)
	fmt.Fprintf(code, "\t%s = %d\n\t%sAlign = %d\n\n", size, d.Size, name, d.Align)
	for _, f := range p.Fields {
		fmt.Fprintf(code, "\t%s = %d\n", offsetConst(name, f), f.Offset)
	}
	code.WriteString(")\n")

	fmt.Fprintf(code, "\nvar _ = [1]struct{}{}[unsafe.Sizeof(%s{})-%s]\n", name, size)

	recv := fmt.Sprintf("(%s *%s)", receiver, name)
	fmt.Fprintf(code, "\n// Len returns the number of fields.\nfunc %s Len() int { return %d }\n", recv, len(p.Fields))

	fmt.Fprintf(code, "\n// Layout returns the record's layout descriptor.\nfunc %s Layout() layout.Descriptor {\n", recv)
	code.WriteString("\treturn layout.Descriptor{\n\t\tFields: []layout.Info{")
	for i, f := range d.Fields {
		if i > 0 {
			code.WriteString(", ")
		}
		fmt.Fprintf(code, "{Size: %d, Align: %d}", f.Size, f.Align)
	}
	code.WriteString("},\n\t\tOffsets: []uint32{")
	for i, f := range p.Fields {
		if i > 0 {
			code.WriteString(", ")
		}
		code.WriteString(offsetConst(name, f))
	}
	fmt.Fprintf(code, "},\n\t\tEnd: %d,\n\t\tAlign: %sAlign,\n\t\tSize: %s,\n\t}\n}\n", d.End, name, size)

	fmt.Fprintf(code, "\n// Bytes returns the record image. The slice aliases %s.\n", receiver)
	fmt.Fprintf(code, "func %s Bytes() []byte { return %s.buf[:] }\n", recv, receiver)

	for i, f := range p.Fields {
		goType := f.Type.GoType
		fmt.Fprintf(code, "\n// At%d returns a pointer to %s.\n", i, f.Name)
		fmt.Fprintf(code, "func %s At%d() *%s { return (*%s)(unsafe.Pointer(&%s.buf[%s])) }\n",
			recv, i, goType, goType, receiver, offsetConst(name, f))
		fmt.Fprintf(code, "\n// Get%d returns %s.\n", i, f.Name)
		fmt.Fprintf(code, "func %s Get%d() %s { return *%s.At%d() }\n", recv, i, goType, receiver, i)
	}

	fmt.Fprintf(code, "\n// Init zeroes every field.\nfunc %s Init() error {\n\t%s.buf = [%s]byte{}\n\treturn nil\n}\n",
		recv, receiver, size)

	params := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		params[i] = f.Param + " " + f.Type.GoType
	}
	fmt.Fprintf(code, "\n// InitWith sets every field in order.\nfunc %s InitWith(%s) error {\n", recv, strings.Join(params, ", "))
	fmt.Fprintf(code, "\t%s.buf = [%s]byte{}\n", receiver, size)
	for i, f := range p.Fields {
		fmt.Fprintf(code, "\t*%s.At%d() = %s\n", receiver, i, f.Param)
	}
	code.WriteString("\treturn nil\n}\n")

	fmt.Fprintf(code, "\n// Destroy zeroes the record.\nfunc %s Destroy() { %s.buf = [%s]byte{} }\n", recv, receiver, size)

	fmt.Fprintf(code, "\n// Assign copies src into %s.\nfunc %s Assign(src *%s) error {\n", receiver, recv, name)
	fmt.Fprintf(code, "\tif %s == src {\n\t\treturn nil\n\t}\n\t%s.buf = src.buf\n\treturn nil\n}\n", receiver, receiver)

	fmt.Fprintf(code, "\n// Equal reports whether every field of %s equals the same field of o.\n", receiver)
	fmt.Fprintf(code, "func %s Equal(o *%s) bool {\n\treturn ", recv, name)
	for i := range p.Fields {
		if i > 0 {
			code.WriteString(" &&\n\t\t")
		}
		fmt.Fprintf(code, "%s.Get%d() == o.Get%d()", receiver, i, i)
	}
	code.WriteString("\n}\n")
}

func offsetConst(record string, f FieldPlan) string {
	return record + "Offset" + f.Export
}
