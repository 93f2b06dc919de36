// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidDataset,
//	    "failed to parse nutrition record",
//	    parseErr,
//	    map[string]interface{}{
//	        "source": src,
//	        "line":   lineNo,
//	    },
//	)
package errors
