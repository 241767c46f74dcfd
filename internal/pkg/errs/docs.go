// Package errs provides the typed errors shared by the tracking service.
//
// Each error type follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrValueIsInvalid, ...) returned by Unwrap,
//     so callers can branch with errors.Is
//   - a struct carrying the offending parameter and an optional Cause, reachable with errors.As
//   - NewX and NewXWithCause constructors
//
// The HTTP adapter maps the sentinels to status codes; domain and application code
// only ever construct these errors, never inspect their text.
package errs
