// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInternal,
//	    "failed to persist previous reboot cause",
//	    writeErr,
//	    map[string]interface{}{
//	        "path": cfg.PreviousCauseFile(),
//	    },
//	)
package errors
