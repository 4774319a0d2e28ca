package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an Outcome with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx context.Context
	res outcome.Outcome[T, E]
}

// Start creates a new chain from an Outcome
func Start[T, E any](ctx context.Context, res outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, outcome.Success[T, E](v))
}

// Outcome returns the underlying Outcome
func (c Chain[T, E]) Outcome() outcome.Outcome[T, E] {
	return c.res
}

// Then chains a same-type continuation that may itself fail
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, in T) outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Bind(c.ctx, c.res, onSuccess)}
}

// Map chains a same-type pure transformation
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, in T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// ThenIf gates a continuation on a predicate; solo.BindIf polarity applies
// (predicate true keeps the value as-is).
func (c Chain[T, E]) ThenIf(predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.BindIf(c.ctx, c.res, predicate, onFalse)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(ctx context.Context, in T)) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Tap(c.ctx, c.res, onSuccess)}
}

// EnsureError performs a side effect on failure without changing the result
func (c Chain[T, E]) EnsureError(onFailure func(ctx context.Context, err E)) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.TapError(c.ctx, c.res, onFailure)}
}

// Then chains a type-changing continuation. Methods cannot introduce type
// parameters, hence the free function.
func Then[In, Out, E any](c Chain[In, E],
	onSuccess func(ctx context.Context, in In) outcome.Outcome[Out, E]) Chain[Out, E] {
	return Chain[Out, E]{ctx: c.ctx, res: solo.Bind(c.ctx, c.res, onSuccess)}
}

// Map chains a type-changing pure transformation
func Map[In, Out, E any](c Chain[In, E],
	onSuccess func(ctx context.Context, in In) Out) Chain[Out, E] {
	return Chain[Out, E]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// MapError re-types the failure channel
func MapError[T, EIn, EOut any](c Chain[T, EIn],
	onFailure func(ctx context.Context, err EIn) EOut) Chain[T, EOut] {
	return Chain[T, EOut]{ctx: c.ctx, res: solo.MapError(c.ctx, c.res, onFailure)}
}

// Match collapses the chain into a final value via solo.Match
func Match[In, Out, E any](c Chain[In, E],
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}
