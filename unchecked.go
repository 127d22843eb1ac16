package fixedvector

// Unchecked is an opt-in view over a vector that replaces the checked API's
// error signals with documented silent fallbacks, for call sites that
// categorically cannot handle errors. Misuse through this view is not
// detected: a push onto a full vector discards the value, a pop or indexed
// access on an empty or out-of-range position falls back to slot 0. It also
// exposes the raw backing block, bypassing logical-size semantics entirely.
//
// The view borrows the vector; it holds no state of its own and is only
// valid while the vector is.
type Unchecked[T any] struct {
	vec *Vector[T]
}

// Unchecked returns the unsafe view over v.
func (v *Vector[T]) Unchecked() Unchecked[T] {
	return Unchecked[T]{vec: v}
}

// PushBack appends value, or silently discards it when the vector is full.
// The vector is left unchanged in that case.
func (u Unchecked[T]) PushBack(value T) {
	_ = u.vec.PushBack(value)
}

// PushFront inserts value at the front, or silently discards it when the
// vector is full.
func (u Unchecked[T]) PushFront(value T) {
	_ = u.vec.PushFront(value)
}

// PopBack removes and returns the last logical element. On an empty vector it
// returns slot 0's current value without mutating anything; since capacity is
// at least 1 the slot always exists, but the value is whatever was last
// written there.
func (u Unchecked[T]) PopBack() T {
	if value, err := u.vec.PopBack(); err == nil {
		return value
	}
	return u.vec.buf[0]
}

// PopFront removes and returns the first logical element, with the same
// empty-vector fallback as PopBack.
func (u Unchecked[T]) PopFront() T {
	if value, err := u.vec.PopFront(); err == nil {
		return value
	}
	return u.vec.buf[0]
}

// At returns the element at logical position pos, or slot 0's value when pos
// is outside the logical range or the size/capacity invariant is violated.
// Unlike the checked accessor it never panics.
func (u Unchecked[T]) At(pos int) T {
	v := u.vec
	if v.size == 0 || pos < 0 || pos >= v.size || v.size > len(v.buf) {
		return v.buf[0]
	}
	return v.buf[pos]
}

// Set overwrites the element at logical position pos, falling back to slot 0
// when pos is outside the logical range or the invariant is violated.
func (u Unchecked[T]) Set(pos int, value T) {
	v := u.vec
	if v.size == 0 || pos < 0 || pos >= v.size || v.size > len(v.buf) {
		v.buf[0] = value
		return
	}
	v.buf[pos] = value
}

// Data returns the full physical backing block, all capacity slots including
// stale ones past the logical size. Writes through the returned slice are
// writes into the vector's storage; the logical size is not consulted or
// maintained.
func (u Unchecked[T]) Data() []T {
	return u.vec.buf
}
