// Package future lifts the solo combinators over pending outcomes. A
// Future[T, E] settles exactly once with an Outcome[T, E]; combinators chain
// left to right and a later step never begins before the earlier Future (and
// anything its continuation awaits) has settled. The package introduces no
// parallelism of its own: one goroutine per stage, sequential by await.
//
// Highlights:
// - Go/Resolve: build a Future from an outcome-producing func or a value
// - GoTry/GoTryWith (+Cleanup): async boundary capture of errors and panics
// - Map/Bind/BindFuture/MapError/Tap/TapError/BindIf/Using: solo twins
// - Await/TryAwait: obtain the settled Outcome, blocking or probing
// - Match: await and reduce to a plain value, ending the chain
//
// Continuations that return a Future cover the "pending continuation" shape;
// for plain transforms and actions a Go function that blocks already is the
// pending form, so no extra variants exist for those.
package future
