package fixedvector

import "iter"

// All returns an iterator over index/value pairs of the logical range
// [0, size), front to back. The sequence is restartable. Mutating the vector
// while ranging invalidates the iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the logical elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Cursor is a random-access position within a vector's logical range. Cursors
// are values: navigation returns a new cursor, so they can be copied, saved
// and compared freely. A cursor is invalidated by any operation that changes
// the vector's logical size or overwrites its storage.
type Cursor[T any] struct {
	vec *Vector[T]
	pos int
}

// Begin returns a cursor at logical position 0. On an empty vector the cursor
// starts out invalid.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{vec: v}
}

// Valid reports whether the cursor addresses a position inside the logical
// range.
func (c Cursor[T]) Valid() bool {
	return c.vec != nil && c.pos >= 0 && c.pos < c.vec.size
}

// Pos returns the logical position the cursor addresses. It may lie outside
// the logical range; check Valid before dereferencing.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Value returns the element at the cursor's position.
func (c Cursor[T]) Value() (T, error) {
	var zero T
	if c.vec == nil {
		return zero, ErrIndexOutOfRange
	}
	return c.vec.At(c.pos)
}

// Ref returns a pointer to the element at the cursor's position for in-place
// mutation. The pointer is invalidated together with the cursor.
func (c Cursor[T]) Ref() (*T, error) {
	if c.vec == nil {
		return nil, ErrIndexOutOfRange
	}
	if err := c.vec.checkIndex(c.pos); err != nil {
		return nil, err
	}
	return &c.vec.buf[c.pos], nil
}

// Set overwrites the element at the cursor's position.
func (c Cursor[T]) Set(value T) error {
	if c.vec == nil {
		return ErrIndexOutOfRange
	}
	return c.vec.Set(c.pos, value)
}

// Next returns a cursor advanced by one position.
func (c Cursor[T]) Next() Cursor[T] {
	return c.Advance(1)
}

// Prev returns a cursor moved back by one position.
func (c Cursor[T]) Prev() Cursor[T] {
	return c.Advance(-1)
}

// Advance returns a cursor moved by n positions; n may be negative.
func (c Cursor[T]) Advance(n int) Cursor[T] {
	c.pos += n
	return c
}

// Seek returns a cursor at logical position pos.
func (c Cursor[T]) Seek(pos int) Cursor[T] {
	c.pos = pos
	return c
}

// Distance returns the number of positions from c to other, negative when
// other lies before c. Both cursors must belong to the same vector.
func (c Cursor[T]) Distance(other Cursor[T]) int {
	return other.pos - c.pos
}
