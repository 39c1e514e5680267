// Package errors provides structured error types for the mxe-call library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, argument/parameter kind names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidInput).
//		Path("add_together", "inputs", "1").
//		ParamType("Ciphertext").
//		Detail("unknown parameter kind").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseSchema, "definition", "add_together")
//	err := errors.Validation("add_together", matchErr)
//
// Argument/parameter matching failures themselves are *computation.MatchError;
// this package wraps them when they cross a package boundary.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
