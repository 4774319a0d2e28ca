package solo

import (
	"context"
	"io"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Using runs body against the resource carried by input and closes the
// resource exactly once when body completes, on every exit path.
//
// A Failure input propagates untouched: body never runs and nothing is
// closed, because no resource was ever exposed. If body panics, the resource
// is closed and the panic re-propagates; only Try converts panics to
// failures. A non-nil Close error is discarded; wrap the close inside body
// if it matters.
func Using[R io.Closer, Out, E any](ctx context.Context, input outcome.Outcome[R, E],
	body func(ctx context.Context, r R) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	if input.IsFailure() {
		return outcome.FailureFrom[R, Out](input)
	}

	r := input.Value()
	defer r.Close()

	return body(ctx, r)
}
