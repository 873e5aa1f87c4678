// Package errs provides standardized error types for the inspection
// scheduling application. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the
// application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value violates its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when an operation conflicts with current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels map one-to-one onto the HTTP boundary: ErrObjectNotFound
// to 404, ErrValueIsInvalid/ErrValueIsRequired/ErrValueIsOutOfRange to
// 400, ErrConflict to 409. Handlers classify with errors.Is and never
// leak storage-layer detail to clients.
package errs
