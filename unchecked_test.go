package fixedvector

import "testing"

func TestUncheckedPushOnFullVectorIsNoOp(t *testing.T) {
	v, err := Of(2, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := v.Unchecked()

	u.PushBack(99)
	u.PushFront(99)

	if v.Len() != 2 {
		t.Fatalf("expected length to stay 2, got %d", v.Len())
	}
	if got, _ := v.Front(); got != 1 {
		t.Fatalf("expected contents unchanged, front=%d", got)
	}
	if got, _ := v.Back(); got != 2 {
		t.Fatalf("expected contents unchanged, back=%d", got)
	}
}

func TestUncheckedPushDelegatesWhenSpaceRemains(t *testing.T) {
	v := New[int](3)
	u := v.Unchecked()

	u.PushBack(2)
	u.PushFront(1)
	u.PushBack(3)

	want := []int{1, 2, 3}
	for i, w := range want {
		if got, _ := v.At(i); got != w {
			t.Fatalf("unexpected element at %d: got %d want %d", i, got, w)
		}
	}
}

func TestUncheckedPopOnEmptyReturnsSlotZero(t *testing.T) {
	v := New[int](2)
	if err := v.PushBack(7); err != nil {
		t.Fatalf("unexpected push error: %v", err)
	}
	v.Clear() // slot 0 still physically holds 7

	u := v.Unchecked()
	if got := u.PopBack(); got != 7 {
		t.Fatalf("expected empty PopBack to fall back to slot 0 value 7, got %d", got)
	}
	if got := u.PopFront(); got != 7 {
		t.Fatalf("expected empty PopFront to fall back to slot 0 value 7, got %d", got)
	}
	if v.Len() != 0 {
		t.Fatalf("expected fallback pops to leave state unchanged, got length %d", v.Len())
	}
}

func TestUncheckedPopDelegatesWhenNonEmpty(t *testing.T) {
	v, err := Of(3, 1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := v.Unchecked()

	if got := u.PopFront(); got != 1 {
		t.Fatalf("expected PopFront to return 1, got %d", got)
	}
	if got := u.PopBack(); got != 3 {
		t.Fatalf("expected PopBack to return 3, got %d", got)
	}
	if v.Len() != 1 {
		t.Fatalf("expected length 1, got %d", v.Len())
	}
}

func TestUncheckedAtFallsBackToSlotZero(t *testing.T) {
	v, err := Of(3, 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := v.Unchecked()

	if got := u.At(1); got != 20 {
		t.Fatalf("expected in-range access to return 20, got %d", got)
	}
	if got := u.At(2); got != 10 {
		t.Fatalf("expected out-of-range access to fall back to slot 0, got %d", got)
	}
	if got := u.At(-1); got != 10 {
		t.Fatalf("expected negative index to fall back to slot 0, got %d", got)
	}

	v.Clear()
	if got := u.At(0); got != 10 {
		t.Fatalf("expected access on empty vector to fall back to slot 0, got %d", got)
	}
}

func TestUncheckedAccessToleratesInvariantViolation(t *testing.T) {
	v, err := Of(2, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v.size = 3 // simulate corruption; the unchecked view must not panic

	u := v.Unchecked()
	if got := u.At(1); got != 5 {
		t.Fatalf("expected violated invariant to fall back to slot 0, got %d", got)
	}
	u.Set(1, 50)
	if v.buf[0] != 50 {
		t.Fatalf("expected violated invariant to redirect writes to slot 0, got %v", v.buf)
	}
}

func TestUncheckedSetOutOfRangeWritesSlotZero(t *testing.T) {
	v, err := Of(3, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := v.Unchecked()

	u.Set(1, 20)
	if got, _ := v.At(1); got != 20 {
		t.Fatalf("expected in-range write, got %d", got)
	}

	u.Set(5, 99)
	if got, _ := v.At(0); got != 99 {
		t.Fatalf("expected out-of-range write to land in slot 0, got %d", got)
	}
}

func TestUncheckedDataExposesFullBackingBlock(t *testing.T) {
	v, err := Of(4, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := v.Unchecked().Data()

	if len(raw) != 4 {
		t.Fatalf("expected raw block of all 4 capacity slots, got %d", len(raw))
	}

	raw[3] = 42
	if v.Len() != 2 {
		t.Fatalf("expected raw writes to bypass the logical size, got length %d", v.Len())
	}
	if err := v.PushBack(3); err != nil {
		t.Fatalf("unexpected push error: %v", err)
	}
	if err := v.PushBack(4); err != nil {
		t.Fatalf("unexpected push error: %v", err)
	}
	// The push overwrote the raw write; storage and logical view share slots.
	if got, _ := v.At(3); got != 4 {
		t.Fatalf("expected push to overwrite raw slot, got %d", got)
	}
}
