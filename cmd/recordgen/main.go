// Command recordgen writes Go source for fixed-layout records.
//
// With -config it reads a YAML record description and writes concrete
// records; with -arity it writes the generic containers of package tuple.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wippyai/tuple/internal/gen"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	var (
		configFile = flag.String("config", "", "YAML record description")
		outFile    = flag.String("out", "", "Output file (stdout if empty)")
		arity      = flag.Int("arity", 0, "Generate generic containers T1..Tn instead of records")
		pkg        = flag.String("pkg", "", "Package name (overrides the config)")
		verbose    = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if !validArgs(*configFile, *arity) {
		fmt.Fprintln(os.Stderr, "Usage: recordgen -config <records.yaml> [-out file] [-pkg name] [-v]")
		fmt.Fprintln(os.Stderr, "       recordgen -arity <n> [-out file] [-v]")
		os.Exit(2)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	gen.SetLogger(log)

	if err := run(*configFile, *outFile, *pkg, *arity); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", e)
		}
		os.Exit(1)
	}
}

// validArgs reports whether exactly one of -config and a positive -arity
// was given.
func validArgs(configFile string, arity int) bool {
	if arity < 0 {
		return false
	}
	return (configFile == "") != (arity == 0)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func run(configFile, outFile, pkg string, arity int) error {
	var (
		src []byte
		err error
	)
	if arity > 0 {
		src, err = gen.GenerateArity(arity)
	} else {
		src, err = generateRecords(configFile, outFile, pkg)
	}
	if err != nil {
		return err
	}

	if outFile == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func generateRecords(configFile, outFile, pkg string) ([]byte, error) {
	cfg, err := gen.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	if pkg != "" {
		cfg.Package = pkg
	}

	outDir := filepath.Dir(configFile)
	if outFile != "" {
		outDir = filepath.Dir(outFile)
	}
	cfg.FillDefaults(outDir)
	return gen.GenerateRecords(cfg)
}
