package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Try runs op and captures its outcome: a returned value becomes Success, a
// returned error or a panic becomes Failure. The error object is preserved
// as-is so a later TapError can inspect its concrete type before a MapError
// narrows it to a domain error.
func Try[T any](ctx context.Context,
	op func(ctx context.Context) (T, error)) (res outcome.Outcome[T, error]) {

	defer func() {
		if r := recover(); r != nil {
			res = outcome.Failure[T, error](asError(r))
		}
	}()

	v, err := op(ctx)
	if err != nil {
		return outcome.Failure[T, error](err)
	}
	return outcome.Success[T, error](v)
}

// TryWith is Try with an error factory: the captured error is passed through
// wrap to build the domain error carried by the Failure.
func TryWith[T, E any](ctx context.Context,
	op func(ctx context.Context) (T, error),
	wrap func(err error) E) (res outcome.Outcome[T, E]) {

	defer func() {
		if r := recover(); r != nil {
			res = outcome.Failure[T, E](wrap(asError(r)))
		}
	}()

	v, err := op(ctx)
	if err != nil {
		return outcome.Failure[T, E](wrap(err))
	}
	return outcome.Success[T, E](v)
}

// TryCleanup is Try with a scoped cleanup clause. The clause runs exactly
// once, after capture and before control returns to the caller, on both the
// success and the failure path. A panic inside cleanup propagates.
func TryCleanup[T any](ctx context.Context,
	op func(ctx context.Context) (T, error),
	cleanup func()) outcome.Outcome[T, error] {

	defer cleanup()
	return Try(ctx, op)
}

// TryWithCleanup combines the error factory and the cleanup clause.
func TryWithCleanup[T, E any](ctx context.Context,
	op func(ctx context.Context) (T, error),
	wrap func(err error) E,
	cleanup func()) outcome.Outcome[T, E] {

	defer cleanup()
	return TryWith(ctx, op, wrap)
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
