package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T, E any](input T) outcome.Outcome[T, E] {
	return outcome.Success[T, E](input)
}

func Fail[T, E any](err E) outcome.Outcome[T, E] {
	return outcome.Failure[T, E](err)
}

// Map transforms the successful value; a Failure passes through with its
// identity intact and onSuccess is never invoked.
func Map[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, in In) Out) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return outcome.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return outcome.FailureFrom[In, Out](input)
}

// Bind chains a function that may itself fail. On Success the continuation's
// Outcome is returned directly; a Failure short-circuits and the continuation
// is never invoked.
func Bind[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, in In) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.FailureFrom[In, Out](input)
}

// MapError transforms the failure error; a Success passes through with its
// identity intact and onFailure is never invoked.
func MapError[T, EIn, EOut any](ctx context.Context, input outcome.Outcome[T, EIn],
	onFailure func(ctx context.Context, err EIn) EOut) outcome.Outcome[T, EOut] {

	if input.IsFailure() {
		return outcome.Failure[T, EOut](onFailure(ctx, input.Error()))
	}
	return outcome.SuccessFrom[T, EIn, EOut](input)
}

// Match reduces the Outcome to a single value by invoking exactly one of the
// two handlers. It never returns an Outcome itself.
func Match[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Error())
}

// Tap runs a side effect on the success channel and returns the input
// unchanged. On Failure the action is never invoked.
func Tap[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, in T)) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TapError is the mirror of Tap on the failure channel.
func TapError[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, err E)) outcome.Outcome[T, E] {

	if input.IsFailure() {
		onFailure(ctx, input.Error())
	}
	return input
}

// BindIf gates a continuation on a predicate.
//
// Polarity warning: the predicate answers "is the value already good as-is?".
// On Success(v), predicate true returns the original Success unchanged and
// the continuation is NOT invoked; predicate false invokes onFalse(v) and its
// result becomes the new Outcome. A Failure skips both and propagates.
func BindIf[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) outcome.Outcome[T, E]) outcome.Outcome[T, E] {

	if input.IsFailure() {
		return input
	}
	if predicate(ctx, input.Value()) {
		return input
	}
	return onFalse(ctx, input.Value())
}

// Validate turns a rejected predicate into a Failure with the given message.
func Validate[T any](ctx context.Context, input outcome.Outcome[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Outcome[T, error] {

	if input.IsFailure() {
		return input
	}
	if valid, errMsg := validate(ctx, input.Value()); !valid {
		return outcome.Failure[T, error](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs validators in order. With breakOnError the first rejection
// wins; otherwise rejections accumulate into a joined error (see
// outcome.Errs to unwrap it).
func ValidateAll[T any](ctx context.Context, input outcome.Outcome[T, error],
	breakOnError bool,
	validators ...func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Outcome[T, error] {

	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, v := range validators {
		if valid, errMsg := v(ctx, input.Value()); !valid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return outcome.Failure[T, error](errors.Join(errs...))
	}
	return input
}
