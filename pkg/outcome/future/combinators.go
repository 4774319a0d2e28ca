package future

import (
	"context"
	"io"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// pipe is the single await point behind every combinator: await the input,
// apply the step, settle the output with whatever the step's Future yields.
// Each combinator below is its solo twin fed through this lift, which is what
// collapses the sync/async variants into one implementation apiece.
func pipe[In, Out, EIn, EOut any](f *Future[In, EIn],
	step func(in outcome.Outcome[In, EIn]) *Future[Out, EOut]) *Future[Out, EOut] {

	next := newFuture[Out, EOut]()
	go func() {
		next.settle(step(f.Await()).Await())
	}()
	return next
}

// Map transforms the eventual successful value. An eventual Failure passes
// through untouched and onSuccess never runs.
func Map[In, Out, E any](ctx context.Context, f *Future[In, E],
	onSuccess func(ctx context.Context, in In) Out) *Future[Out, E] {

	return pipe(f, func(in outcome.Outcome[In, E]) *Future[Out, E] {
		return Resolve(solo.Map(ctx, in, onSuccess))
	})
}

// Bind chains a synchronous continuation that may itself fail.
func Bind[In, Out, E any](ctx context.Context, f *Future[In, E],
	onSuccess func(ctx context.Context, in In) outcome.Outcome[Out, E]) *Future[Out, E] {

	return pipe(f, func(in outcome.Outcome[In, E]) *Future[Out, E] {
		return Resolve(solo.Bind(ctx, in, onSuccess))
	})
}

// BindFuture chains a continuation that is itself pending. The continuation's
// Future is awaited before the returned Future settles.
func BindFuture[In, Out, E any](ctx context.Context, f *Future[In, E],
	onSuccess func(ctx context.Context, in In) *Future[Out, E]) *Future[Out, E] {

	return pipe(f, func(in outcome.Outcome[In, E]) *Future[Out, E] {
		if in.IsFailure() {
			return Resolve(outcome.FailureFrom[In, Out](in))
		}
		return onSuccess(ctx, in.Value())
	})
}

// MapError transforms the eventual failure error.
func MapError[T, EIn, EOut any](ctx context.Context, f *Future[T, EIn],
	onFailure func(ctx context.Context, err EIn) EOut) *Future[T, EOut] {

	return pipe(f, func(in outcome.Outcome[T, EIn]) *Future[T, EOut] {
		return Resolve(solo.MapError(ctx, in, onFailure))
	})
}

// Tap runs a side effect on the eventual success and passes the Outcome
// through unchanged. A blocking action is already the pending form.
func Tap[T, E any](ctx context.Context, f *Future[T, E],
	onSuccess func(ctx context.Context, in T)) *Future[T, E] {

	return pipe(f, func(in outcome.Outcome[T, E]) *Future[T, E] {
		return Resolve(solo.Tap(ctx, in, onSuccess))
	})
}

// TapError is the mirror of Tap on the failure channel.
func TapError[T, E any](ctx context.Context, f *Future[T, E],
	onFailure func(ctx context.Context, err E)) *Future[T, E] {

	return pipe(f, func(in outcome.Outcome[T, E]) *Future[T, E] {
		return Resolve(solo.TapError(ctx, in, onFailure))
	})
}

// BindIf gates a synchronous continuation on a predicate. Same polarity as
// solo.BindIf: predicate true keeps the Success as-is.
func BindIf[T, E any](ctx context.Context, f *Future[T, E],
	predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) outcome.Outcome[T, E]) *Future[T, E] {

	return pipe(f, func(in outcome.Outcome[T, E]) *Future[T, E] {
		return Resolve(solo.BindIf(ctx, in, predicate, onFalse))
	})
}

// BindIfFuture is BindIf with a pending continuation.
func BindIfFuture[T, E any](ctx context.Context, f *Future[T, E],
	predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) *Future[T, E]) *Future[T, E] {

	return pipe(f, func(in outcome.Outcome[T, E]) *Future[T, E] {
		if in.IsFailure() || predicate(ctx, in.Value()) {
			return Resolve(in)
		}
		return onFalse(ctx, in.Value())
	})
}

// Using runs a synchronous body against the eventual resource with
// guaranteed release, as solo.Using does.
func Using[R io.Closer, Out, E any](ctx context.Context, f *Future[R, E],
	body func(ctx context.Context, r R) outcome.Outcome[Out, E]) *Future[Out, E] {

	return pipe(f, func(in outcome.Outcome[R, E]) *Future[Out, E] {
		return Resolve(solo.Using(ctx, in, body))
	})
}

// UsingFuture is Using with a pending body. The resource is closed after the
// body's Future settles, before the returned Future does.
func UsingFuture[R io.Closer, Out, E any](ctx context.Context, f *Future[R, E],
	body func(ctx context.Context, r R) *Future[Out, E]) *Future[Out, E] {

	return pipe(f, func(in outcome.Outcome[R, E]) *Future[Out, E] {
		if in.IsFailure() {
			return Resolve(outcome.FailureFrom[R, Out](in))
		}

		r := in.Value()
		defer r.Close()

		return Resolve(body(ctx, r).Await())
	})
}

// Match awaits the Future and reduces it to a concrete value by invoking
// exactly one of the two handlers. The reduction terminates a chain, so the
// pending-ness ends here.
func Match[In, Out, E any](ctx context.Context, f *Future[In, E],
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	return solo.Match(ctx, f.Await(), onSuccess, onFailure)
}
