package future

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

func TestMap_PendingInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gate := make(chan struct{})
	f := Go(ctx, func(ctx context.Context) outcome.Outcome[int, error] {
		<-gate
		return solo.Succeed[int, error](5)
	})

	mapped := Map(ctx, f, func(ctx context.Context, in int) int { return in * 2 })
	close(gate)

	res := mapped.Await()
	if !res.IsSuccess() || res.Value() != 10 {
		t.Fatalf("expected Success(10), got: %v", res)
	}
}

func TestMap_FailurePropagatesIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	err := errors.New("boom")
	in := solo.Fail[int, error](err)

	calls := 0
	res := Map(ctx, Resolve(in), func(ctx context.Context, in int) int {
		calls++
		return in
	}).Await()

	if res.IsSuccess() || res.Error() != err || res.Id() != in.Id() {
		t.Fatalf("expected the original failure, got: %v", res)
	}
	if calls != 0 {
		t.Fatalf("onSuccess must never run on a Failure, ran %d times", calls)
	}
}

func TestBind_SyncContinuation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Bind(ctx, Resolve(solo.Succeed[int, error](4)),
		func(ctx context.Context, in int) outcome.Outcome[string, error] {
			return solo.Succeed[string, error](strconv.Itoa(in))
		}).Await()

	if !res.IsSuccess() || res.Value() != "4" {
		t.Fatalf("expected Success(\"4\"), got: %v", res)
	}
}

func TestBindFuture_PendingContinuation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := BindFuture(ctx, Resolve(solo.Succeed[int, error](4)),
		func(ctx context.Context, in int) *Future[string, error] {
			return Go(ctx, func(ctx context.Context) outcome.Outcome[string, error] {
				return solo.Succeed[string, error](strconv.Itoa(in * 10))
			})
		}).Await()

	if !res.IsSuccess() || res.Value() != "40" {
		t.Fatalf("expected Success(\"40\"), got: %v", res)
	}
}

func TestBindFuture_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	err := errors.New("boom")
	in := solo.Fail[int, error](err)

	calls := 0
	res := BindFuture(ctx, Resolve(in),
		func(ctx context.Context, v int) *Future[string, error] {
			calls++
			return Resolve(solo.Succeed[string, error]("unreachable"))
		}).Await()

	if res.IsSuccess() || res.Error() != err || res.Id() != in.Id() {
		t.Fatalf("expected the original failure, got: %v", res)
	}
	if calls != 0 {
		t.Fatalf("continuation must never run on a Failure, ran %d times", calls)
	}
}

func TestMapError_PendingInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := MapError(ctx, Resolve(solo.Fail[int, error](errors.New("raw"))),
		func(ctx context.Context, err error) string { return "domain: " + err.Error() }).Await()

	if res.IsSuccess() || res.Error() != "domain: raw" {
		t.Fatalf("expected Failure('domain: raw'), got: %v", res)
	}
}

func TestTapAndTapError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := solo.Succeed[int, error](5)
	seen := 0
	errCalls := 0

	res := TapError(ctx,
		Tap(ctx, Resolve(in), func(ctx context.Context, v int) { seen = v }),
		func(ctx context.Context, err error) { errCalls++ }).Await()

	if res.Id() != in.Id() {
		t.Fatalf("taps must pass the identical outcome through")
	}
	if seen != 5 || errCalls != 0 {
		t.Fatalf("expected success tap only, seen=%d errCalls=%d", seen, errCalls)
	}
}

func TestBindIf_BothPolarities(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(ctx context.Context, in int) outcome.Outcome[int, error] {
		return solo.Succeed[int, error](in * 2)
	}
	bigEnough := func(ctx context.Context, in int) bool { return in > 5 }

	kept := BindIf(ctx, Resolve(solo.Succeed[int, error](10)), bigEnough, double).Await()
	if kept.Value() != 10 {
		t.Fatalf("predicate true must keep the value as-is, got: %v", kept)
	}

	applied := BindIf(ctx, Resolve(solo.Succeed[int, error](3)), bigEnough, double).Await()
	if applied.Value() != 6 {
		t.Fatalf("predicate false must apply the continuation, got: %v", applied)
	}
}

func TestBindIfFuture_PendingContinuation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := BindIfFuture(ctx, Resolve(solo.Succeed[int, error](3)),
		func(ctx context.Context, in int) bool { return in > 5 },
		func(ctx context.Context, in int) *Future[int, error] {
			return Go(ctx, func(ctx context.Context) outcome.Outcome[int, error] {
				return solo.Succeed[int, error](in * 2)
			})
		}).Await()

	if !res.IsSuccess() || res.Value() != 6 {
		t.Fatalf("expected Success(6), got: %v", res)
	}
}

type fakeFile struct {
	closed int
}

func (f *fakeFile) Close() error {
	f.closed++
	return nil
}

func TestUsing_PendingResource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	file := &fakeFile{}
	res := Using(ctx, Resolve(solo.Succeed[*fakeFile, error](file)),
		func(ctx context.Context, r *fakeFile) outcome.Outcome[string, error] {
			if r.closed != 0 {
				return solo.Fail[string, error](errors.New("closed too early"))
			}
			return solo.Succeed[string, error]("read")
		}).Await()

	if !res.IsSuccess() || res.Value() != "read" {
		t.Fatalf("expected Success('read'), got: %v", res)
	}
	if file.closed != 1 {
		t.Fatalf("expected exactly one Close, got %d", file.closed)
	}
}

func TestUsingFuture_ClosesAfterPendingBody(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	file := &fakeFile{}
	res := UsingFuture(ctx, Resolve(solo.Succeed[*fakeFile, error](file)),
		func(ctx context.Context, r *fakeFile) *Future[string, error] {
			return Go(ctx, func(ctx context.Context) outcome.Outcome[string, error] {
				if r.closed != 0 {
					return solo.Fail[string, error](errors.New("closed before body settled"))
				}
				return solo.Succeed[string, error]("read")
			})
		}).Await()

	if !res.IsSuccess() || res.Value() != "read" {
		t.Fatalf("expected Success('read'), got: %v", res)
	}
	if file.closed != 1 {
		t.Fatalf("expected exactly one Close, got %d", file.closed)
	}
}

func TestUsingFuture_FailureInputSkipsBody(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	err := errors.New("no resource")
	calls := 0

	res := UsingFuture(ctx, Resolve(solo.Fail[*fakeFile, error](err)),
		func(ctx context.Context, r *fakeFile) *Future[string, error] {
			calls++
			return Resolve(solo.Succeed[string, error]("unreachable"))
		}).Await()

	if res.IsSuccess() || res.Error() != err || calls != 0 {
		t.Fatalf("expected untouched failure, calls=%d res=%v", calls, res)
	}
}

func TestMatch_ReducesPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Match(ctx, Resolve(solo.Succeed[int, error](3)),
		func(ctx context.Context, in int) string { return "ok:" + strconv.Itoa(in) },
		func(ctx context.Context, err error) string { return "err:" + err.Error() })

	if got != "ok:3" {
		t.Fatalf("expected 'ok:3', got: %s", got)
	}
}

func TestChain_StrictLeftToRightOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// every append is ordered by the settle of the previous stage
	var order []string

	res := Match(ctx,
		Tap(ctx,
			Map(ctx,
				Tap(ctx,
					Resolve(solo.Succeed[int, error](1)),
					func(ctx context.Context, in int) { order = append(order, "first") }),
				func(ctx context.Context, in int) int {
					order = append(order, "second")
					return in + 1
				}),
			func(ctx context.Context, in int) { order = append(order, "third") }),
		func(ctx context.Context, in int) int { return in },
		func(ctx context.Context, err error) int { return -1 })

	if res != 2 {
		t.Fatalf("expected 2, got: %d", res)
	}
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("expected strict left-to-right execution, got: %v", order)
	}
}
