package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Inspector defines read-only access to both channels of an Outcome
type Inspector[T, E any] interface {
	ValueProvider[T]
	// Error returns the error if the operation failed
	Error() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ Inspector[int, error] = Outcome[int, error]{}
