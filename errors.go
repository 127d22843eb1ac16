package fixedvector

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when an insertion would grow the logical
	// size past the fixed capacity.
	ErrCapacityExceeded = errors.New("fixedvector: vector is at capacity")
	// ErrEmptyContainer is returned when removing from a vector with no
	// logical elements.
	ErrEmptyContainer = errors.New("fixedvector: vector is empty")
	// ErrIndexOutOfRange is returned by indexed access when the position is
	// not within the logical range [0, size).
	ErrIndexOutOfRange = errors.New("fixedvector: index is out of range for current size")
	// ErrCapacityMismatch is returned by Assign and MoveFrom when the two
	// vectors do not share the same fixed capacity.
	ErrCapacityMismatch = errors.New("fixedvector: vectors have different capacities")
)

// InvariantViolationError reports a logical size larger than the fixed
// capacity. The checked API cannot produce this state; it can only arise from
// corruption through the raw storage escape hatch or a bug in this package.
// It is raised via panic and is not meant to be recovered from.
type InvariantViolationError struct {
	Size     int
	Capacity int
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("fixedvector: size %d is larger than capacity %d: container state is corrupted", e.Size, e.Capacity)
}
