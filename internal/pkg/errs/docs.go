// Package errs provides standardized error types for the point-of-sale application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - IntegrationError: For failures talking to the external delivery partner
//   - VersionConflictError: For compare-and-swap writes that lose a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter classifies errors through the sentinels: ErrValueIsInvalid
// and ErrValueIsRequired map to 400, ErrObjectNotFound to 404, everything else
// to 500.
package errs
