// Package chain provides a fluent wrapper around Outcome[T, E] for building
// synchronous left-to-right pipelines using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then/Map/ThenIf: continuation steps (free functions when the type changes)
// - Ensure/EnsureError: side effects without changing the result
// - Match: collapse the chain into a final value via handlers
package chain
