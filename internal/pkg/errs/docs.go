// Package errs provides standardized error types for the delivery time service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps the service's error taxonomy onto concrete types:
//   - ValueIsRequiredError: a required field is absent (MissingField)
//   - ValueIsInvalidError: a time or date does not parse (InvalidFormat)
//   - ValueIsNotAllowedError: a literal outside a closed set (InvalidEnum)
//   - ValueIsOutOfRangeError: a numeric component outside its bounds
//   - ObjectNotFoundError: a rule or order does not exist (NotFound)
//   - ObjectAlreadyExistsError: a uniqueness constraint is violated (DuplicateName)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
package errs
