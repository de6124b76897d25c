// Package errs provides standardized error types for the order board service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that the ingress layer relies on to map failures onto HTTP status codes.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing from a payload
//   - ValueIsInvalidError: For when a value fails validation (a bad id, an unknown status)
//   - ObjectNotFoundError: For when an order or item cannot be found
//   - VersionIsInvalidError: For when a concurrent writer won a status transition race
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Handlers classify failures with errors.Is against the sentinels: not-found
// becomes 404, validation and version conflicts become 400, and anything
// outside this taxonomy is treated as an internal failure.
package errs
