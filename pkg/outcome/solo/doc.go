// Package solo contains single-value, synchronous combinators over
// Outcome[T, E]. These functions form the core building blocks for
// error-aware pipelines; the future package lifts each of them over pending
// outcomes.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T, E]
// - Map/MapError: transform one channel, pass the other through untouched
// - Bind: chain a continuation that may itself fail (short-circuits)
// - BindIf: predicate-gated continuation; true keeps the value AS-IS
// - Tap/TapError: side effects that return the input unchanged
// - Try/TryWith: capture returned errors and panics at the boundary,
//   optionally with a cleanup clause (TryCleanup/TryWithCleanup)
// - Using: run a body against an io.Closer with guaranteed release
// - Match: reduce to a concrete value via success/failure handlers
// - Validate/ValidateAll: predicate validation producing failures
//
// Failures short-circuit every value-channel combinator and remain visible to
// the error-channel ones; no combinator mutates its input.
package solo
