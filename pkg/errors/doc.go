// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidDocument,
//	    "failed to decode recipe document",
//	    decodeErr,
//	    map[string]interface{}{
//	        "path":   path,
//	        "format": format,
//	    },
//	)
package errors
