// Package errors provides structured error types for record layout tooling.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, Go/WIT type names, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindUnknownType).
//		Path("Sample", "score").
//		WitType("f65").
//		Detail("no scalar named %q", "f65").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Misaligned(errors.PhaseMemory, 12, 8)
//	err := errors.OutOfBounds(errors.PhaseView, path, 4, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// Errors raised by field types stored in a record are never wrapped with this
// package; they reach the caller unchanged.
package errors
