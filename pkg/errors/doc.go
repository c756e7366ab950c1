// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeGenerationFailed,
//	    "failed to generate weekly plan",
//	    cause,
//	)
package errors
