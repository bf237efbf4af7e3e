// Package gen emits Go source for fixed-layout records.
//
// Two kinds of output are produced. GenerateRecords turns a YAML description
// of scalar records into concrete types whose field offsets are compile-time
// constants; GenerateArity writes the generic T1..Tn containers of package
// tuple.
//
// Pipeline for concrete records:
//
//	cfg, err := gen.LoadConfig("records.yaml")
//	cfg.FillDefaults(outDir)
//	if err := cfg.Validate(); err != nil {
//		// every problem is reported, see multierr.Errors
//	}
//	src, err := gen.GenerateRecords(cfg)
//
// Layouts are computed twice, once from host-independent scalar sizes with
// layout.Calculate and once from the WIT record type through the Canonical
// ABI calculator; a disagreement aborts generation.
package gen
