package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"github.com/wippyai/tuple/errors"
	"github.com/wippyai/tuple/internal/scalar"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config describes a file of generated records.
type Config struct {
	Package string   `yaml:"package"`
	Records []Record `yaml:"records"`
}

// Record is one generated record type.
type Record struct {
	Name   string  `yaml:"name"`
	Doc    string  `yaml:"doc,omitempty"`
	Fields []Field `yaml:"fields"`
}

// Field is one record field. Type is a WIT scalar name or a Go alias.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadConfig reads a YAML record description. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML record description.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode yaml")
	}
	return &cfg, nil
}

// FillDefaults sets the package name from the output directory and gives
// undocumented records a doc line.
func (c *Config) FillDefaults(outDir string) {
	if c.Package == "" && outDir != "" {
		if abs, err := filepath.Abs(outDir); err == nil {
			c.Package = filepath.Base(abs)
		}
	}
	for i := range c.Records {
		r := &c.Records[i]
		if r.Doc == "" && r.Name != "" {
			r.Doc = fmt.Sprintf("%s is a fixed-layout record.", r.Name)
		}
	}
}

// Validate reports every problem in the configuration at once. The result
// can be split with multierr.Errors.
func (c *Config) Validate() error {
	var err error
	if !isIdent(c.Package) {
		err = multierr.Append(err, errors.InvalidInput(errors.PhaseConfig,
			[]string{"package"}, fmt.Sprintf("invalid package name %q", c.Package)))
	}
	if len(c.Records) == 0 {
		err = multierr.Append(err, errors.InvalidInput(errors.PhaseConfig,
			[]string{"records"}, "no records defined"))
	}

	seen := make(map[string]bool, len(c.Records))
	for i, r := range c.Records {
		path := []string{"records", fmt.Sprint(i)}
		switch {
		case r.Name == "":
			err = multierr.Append(err, errors.InvalidInput(errors.PhaseConfig, path, "record name is empty"))
		case !isIdent(r.Name) || !token.IsExported(r.Name):
			err = multierr.Append(err, errors.InvalidInput(errors.PhaseConfig, path,
				fmt.Sprintf("record name %q is not an exported identifier", r.Name)))
		case seen[r.Name]:
			err = multierr.Append(err, errors.Duplicate(errors.PhaseConfig, path, r.Name))
		}
		seen[r.Name] = true
		err = multierr.Append(err, r.validate(path))
	}
	return err
}

func (r *Record) validate(path []string) error {
	if len(r.Fields) == 0 {
		return errors.InvalidInput(errors.PhaseConfig, path, fmt.Sprintf("record %q has no fields", r.Name))
	}

	var err error
	seen := make(map[string]bool, len(r.Fields))
	for i, f := range r.Fields {
		fpath := append(append([]string(nil), path...), "fields", fmt.Sprint(i))
		switch {
		case f.Name == "":
			err = multierr.Append(err, errors.InvalidInput(errors.PhaseConfig, fpath, "field name is empty"))
		case !isIdent(f.Name):
			err = multierr.Append(err, errors.InvalidInput(errors.PhaseConfig, fpath,
				fmt.Sprintf("field name %q is not an identifier", f.Name)))
		case seen[f.Name]:
			err = multierr.Append(err, errors.Duplicate(errors.PhaseConfig, fpath, f.Name))
		}
		seen[f.Name] = true
		if _, ok := scalar.Lookup(f.Type); !ok {
			err = multierr.Append(err, errors.UnknownType(errors.PhaseConfig, fpath, f.Type))
		}
	}
	return err
}

func isIdent(s string) bool {
	return token.IsIdentifier(s) && s != "_"
}
