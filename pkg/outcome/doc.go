// Package outcome defines the two-variant success/failure container that the
// rest of the module composes over. An Outcome[T, E] is always fully one of
// Success(value T) or Failure(err E), is immutable once constructed, and is
// only ever created through the Success and Failure factories.
//
// Highlights:
// - Success/Failure: construct Outcome[T, E]
// - Value/Error: channel accessors; reading the wrong channel panics
// - FailureFrom/SuccessFrom: re-type one channel while preserving identity
// - IsNil/Errs/IsCancellation: error helpers for the E = error case
//
// Transformations over Outcome live in the solo (synchronous), future
// (pending) and chain (fluent) packages.
package outcome
