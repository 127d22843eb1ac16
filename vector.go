package fixedvector

import (
	"fmt"

	"github.com/timzifer/fixed_vector/internal/telemetry"
)

// Vector is a fixed-capacity sequence. The backing block never moves; only
// the logical size changes. The zero value is not usable, construct through
// New, Of or Wrap.
type Vector[T any] struct {
	buf  []T
	size int
}

// New creates an empty vector whose backing block holds exactly capacity
// default-initialized slots. Panics if capacity is less than 1.
func New[T any](capacity int) *Vector[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("fixedvector: capacity must be at least 1, got %d", capacity))
	}
	return &Vector[T]{buf: make([]T, capacity)}
}

// Of creates a vector with the given capacity whose logical contents are the
// provided values, in order. Returns ErrCapacityExceeded when more values are
// given than the capacity can hold; the check is always performed at runtime.
// Panics if capacity is less than 1.
func Of[T any](capacity int, values ...T) (*Vector[T], error) {
	if len(values) > capacity {
		return nil, ErrCapacityExceeded
	}
	v := New[T](capacity)
	copy(v.buf, values)
	v.size = len(values)
	return v, nil
}

// Wrap adopts storage as the full backing block: capacity and logical size
// both become len(storage). The caller hands over ownership; mutating the
// slice afterwards corrupts the vector. Wrapping an array slice yields a
// vector that performs no heap allocation of its own. Panics on empty
// storage.
func Wrap[T any](storage []T) *Vector[T] {
	if len(storage) == 0 {
		panic("fixedvector: cannot wrap empty storage")
	}
	return &Vector[T]{buf: storage, size: len(storage)}
}

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Len returns the current logical size.
func (v *Vector[T]) Len() int {
	return v.size
}

// Empty reports whether the vector holds no logical elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Full reports whether the logical size has reached the capacity.
func (v *Vector[T]) Full() bool {
	return v.size == len(v.buf)
}

// Clear resets the logical size to zero. Slot contents are neither reset nor
// destroyed; previously held values stay physically present until overwritten
// and remain reachable through the Unchecked view.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// At returns the element at logical position pos.
func (v *Vector[T]) At(pos int) (T, error) {
	var zero T
	if err := v.checkIndex(pos); err != nil {
		return zero, err
	}
	return v.buf[pos], nil
}

// Set overwrites the element at logical position pos.
func (v *Vector[T]) Set(pos int, value T) error {
	if err := v.checkIndex(pos); err != nil {
		return err
	}
	v.buf[pos] = value
	return nil
}

// Front returns the first logical element.
func (v *Vector[T]) Front() (T, error) {
	return v.At(0)
}

// Back returns the last logical element.
func (v *Vector[T]) Back() (T, error) {
	return v.At(v.size - 1)
}

// Snapshot returns a copy of the logical elements for inspection/testing.
func (v *Vector[T]) Snapshot() []T {
	if v.size == 0 {
		return nil
	}
	out := make([]T, v.size)
	copy(out, v.buf[:v.size])
	return out
}

// PushBack appends value after the last logical element. Returns
// ErrCapacityExceeded when the vector is full, leaving it unchanged. O(1).
func (v *Vector[T]) PushBack(value T) error {
	if v.size == len(v.buf) {
		return ErrCapacityExceeded
	}
	v.buf[v.size] = value
	v.size++
	return nil
}

// PushFront inserts value before the first logical element, shifting every
// existing element one slot to the right. Returns ErrCapacityExceeded when
// the vector is full, leaving it unchanged. O(size); expensive for large
// logical sizes.
func (v *Vector[T]) PushFront(value T) (err error) {
	moved := 0
	finish := telemetry.TraceShift()
	defer func() { finish(moved, err) }()

	if v.size == len(v.buf) {
		return ErrCapacityExceeded
	}
	moved = v.size
	v.rightShiftByOne()
	v.buf[0] = value
	return nil
}

// PopBack removes and returns the last logical element. Returns
// ErrEmptyContainer when the vector is empty, leaving it unchanged. The
// vacated slot keeps its old value; it is merely excluded from the logical
// range. O(1).
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrEmptyContainer
	}
	v.size--
	return v.buf[v.size], nil
}

// PopFront removes and returns the first logical element, shifting every
// remaining element one slot to the left. Returns ErrEmptyContainer when the
// vector is empty, leaving it unchanged. O(size); expensive for large logical
// sizes.
func (v *Vector[T]) PopFront() (value T, err error) {
	moved := 0
	finish := telemetry.TraceShift()
	defer func() { finish(moved, err) }()

	if v.size == 0 {
		return value, ErrEmptyContainer
	}
	value = v.buf[0]
	moved = v.size - 1
	v.leftShiftByOne()
	return value, nil
}

// Reverse reverses the logical elements in place via symmetric swaps. Slots
// past the logical size are untouched. O(size).
func (v *Vector[T]) Reverse() {
	for i, j := 0, v.size-1; i < j; i, j = i+1, j-1 {
		v.buf[i], v.buf[j] = v.buf[j], v.buf[i]
	}
}

// Clone returns a deep copy: all capacity slots, stale ones included, plus
// the logical size. Matches whole-block array-copy semantics.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{buf: make([]T, len(v.buf)), size: v.size}
	copy(out.buf, v.buf)
	return out
}

// Assign copies all capacity slots and the logical size from src into v.
// Both vectors must share the same capacity; otherwise ErrCapacityMismatch is
// returned and v is unchanged.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if len(v.buf) != len(src.buf) {
		return ErrCapacityMismatch
	}
	copy(v.buf, src.buf)
	v.size = src.size
	return nil
}

// MoveFrom transfers src's backing block and logical size into v by swapping
// storage: v adopts src's block, src receives v's old block with its logical
// size reset to zero. The moved-from vector stays valid and empty, shares no
// storage with v, and no allocation takes place. Both vectors must share the
// same capacity; otherwise ErrCapacityMismatch is returned and both are
// unchanged.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if len(v.buf) != len(src.buf) {
		return ErrCapacityMismatch
	}
	if v == src {
		return nil
	}
	v.buf, src.buf = src.buf, v.buf
	v.size = src.size
	src.size = 0
	return nil
}

// Equal reports whether a and b hold the same logical elements in the same
// order. Physical slots past the logical size never participate, so vectors
// built through different construction paths compare equal when their logical
// contents match.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable or need semantic equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// checkIndex validates pos against the logical range. It first verifies the
// size/capacity invariant; a violated invariant means corrupted state and
// panics with *InvariantViolationError rather than propagating garbage.
func (v *Vector[T]) checkIndex(pos int) error {
	if v.size > len(v.buf) {
		panic(&InvariantViolationError{Size: v.size, Capacity: len(v.buf)})
	}
	if v.size == 0 || pos < 0 || pos >= v.size {
		return ErrIndexOutOfRange
	}
	return nil
}

// rightShiftByOne grows the logical range by one and moves every pre-existing
// element one slot towards the back, leaving slot 0 ready to be overwritten.
// Callers must have verified size < capacity.
func (v *Vector[T]) rightShiftByOne() {
	v.size++
	for i := v.size - 1; i > 0; i-- {
		v.buf[i] = v.buf[i-1]
	}
}

// leftShiftByOne moves every element after slot 0 one slot towards the front
// and shrinks the logical range by one. Callers must have verified size > 0.
func (v *Vector[T]) leftShiftByOne() {
	for i := 1; i < v.size; i++ {
		v.buf[i-1] = v.buf[i]
	}
	v.size--
}
