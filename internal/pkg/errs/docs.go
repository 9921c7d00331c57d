// Package errs provides standardized error types for the dispatch coordinator.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error kinds the coordinator surfaces to callers:
//   - ObjectNotFoundError: a referenced object does not exist
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     input validation failures
//   - StatusConflictError: a state precondition was violated by the time of
//     mutation (always a legitimate race, not caller error)
//   - HandoffCodeMismatchError: the supplied handoff code does not match
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers branch on the sentinel with errors.Is, never on message text.
package errs
