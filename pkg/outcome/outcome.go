package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome holds exactly one of two variants: Success carrying a value of T,
// or Failure carrying an error of E. T and E are independent; E is not
// required to implement error.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-types a Failure to a new value type. The error value, id and
// creation time carry over unchanged, so a failure keeps its identity while it
// propagates through type-changing combinators. Panics if from is a Success.
func FailureFrom[In, Out, E any](from Outcome[In, E]) Outcome[Out, E] {
	if from.isSuccess {
		panic("outcome: FailureFrom called on a Success")
	}
	return Outcome[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom re-types a Success to a new error type. The value, id and
// creation time carry over unchanged. Panics if from is a Failure.
func SuccessFrom[T, EIn, EOut any](from Outcome[T, EIn]) Outcome[T, EOut] {
	if !from.isSuccess {
		panic("outcome: SuccessFrom called on a Failure")
	}
	return Outcome[T, EOut]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value. Accessing the value of a Failure is a
// programmer error and panics.
func (o Outcome[T, E]) Value() T {
	if !o.isSuccess {
		panic("outcome: Value called on a Failure")
	}
	return o.value
}

// Error returns the failure error. Accessing the error of a Success is a
// programmer error and panics.
func (o Outcome[T, E]) Error() E {
	if o.isSuccess {
		panic("outcome: Error called on a Success")
	}
	return o.err
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}
