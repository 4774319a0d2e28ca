package future

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Future is a pending Outcome: a computation that settles exactly once with
// an Outcome[T, E]. Settling is idempotent; any number of readers may Await.
type Future[T, E any] struct {
	settled chan struct{}
	once    sync.Once
	res     outcome.Outcome[T, E]
}

func newFuture[T, E any]() *Future[T, E] {
	return &Future[T, E]{settled: make(chan struct{})}
}

func (f *Future[T, E]) settle(res outcome.Outcome[T, E]) {
	f.once.Do(func() {
		f.res = res
		close(f.settled)
	})
}

// Go runs op in its own goroutine and returns the Future it will settle.
// The library adds no scheduling beyond this single goroutine; op observes
// ctx itself if it wants to stop early.
func Go[T, E any](ctx context.Context,
	op func(ctx context.Context) outcome.Outcome[T, E]) *Future[T, E] {

	f := newFuture[T, E]()
	go func() {
		f.settle(op(ctx))
	}()
	return f
}

// Resolve lifts an already-present Outcome into a settled Future.
func Resolve[T, E any](res outcome.Outcome[T, E]) *Future[T, E] {
	f := newFuture[T, E]()
	f.settle(res)
	return f
}

// GoTry runs op asynchronously with Try capture: a returned error or a panic
// settles the Future as a Failure. Cancellation surfaces here too, as the
// ctx error op returns once it observes ctx.Done().
func GoTry[T any](ctx context.Context,
	op func(ctx context.Context) (T, error)) *Future[T, error] {

	f := newFuture[T, error]()
	go func() {
		f.settle(solo.Try(ctx, op))
	}()
	return f
}

// GoTryWith is GoTry with an error factory.
func GoTryWith[T, E any](ctx context.Context,
	op func(ctx context.Context) (T, error),
	wrap func(err error) E) *Future[T, E] {

	f := newFuture[T, E]()
	go func() {
		f.settle(solo.TryWith(ctx, op, wrap))
	}()
	return f
}

// GoTryCleanup is GoTry with a scoped cleanup clause. The clause runs exactly
// once, after capture and before the Future settles.
func GoTryCleanup[T any](ctx context.Context,
	op func(ctx context.Context) (T, error),
	cleanup func()) *Future[T, error] {

	f := newFuture[T, error]()
	go func() {
		f.settle(solo.TryCleanup(ctx, op, cleanup))
	}()
	return f
}

// GoTryWithCleanup combines the error factory and the cleanup clause.
func GoTryWithCleanup[T, E any](ctx context.Context,
	op func(ctx context.Context) (T, error),
	wrap func(err error) E,
	cleanup func()) *Future[T, E] {

	f := newFuture[T, E]()
	go func() {
		f.settle(solo.TryWithCleanup(ctx, op, wrap, cleanup))
	}()
	return f
}

// Await blocks until the Future settles and returns its Outcome.
func (f *Future[T, E]) Await() outcome.Outcome[T, E] {
	<-f.settled
	return f.res
}

// TryAwait returns the Outcome without blocking; ok is false while pending.
func (f *Future[T, E]) TryAwait() (res outcome.Outcome[T, E], ok bool) {
	select {
	case <-f.settled:
		return f.res, true
	default:
		return res, false
	}
}
