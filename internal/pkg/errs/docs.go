// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the repositories and the HTTP adapter.
//
// The package includes the generic error types:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a rule
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: a referenced product, customer, order or request does not exist
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on every wrapped instance
//
// Domain-specific failures (invalid status transitions, capacity violations, export
// conflicts) live next to the aggregates that raise them.
package errs
