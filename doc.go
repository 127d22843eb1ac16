// Package fixedvector provides a sequence container with vector-like
// ergonomics over storage whose capacity is fixed at construction. The
// backing block is allocated exactly once (or adopted from the caller via
// Wrap) and no operation ever grows, shrinks or reallocates it.
//
// A vector tracks a logical size in [0, capacity]. Slots at or past the
// logical size hold stale values: they are excluded from indexing, equality
// and iteration, but stay physically present until overwritten. Clear only
// resets the logical size.
//
// Front insertion and removal shift all logical elements by one slot and are
// O(size); this cost model is deliberate and is not hidden behind a ring
// buffer. Back insertion and removal are O(1).
//
// The checked API reports misuse through sentinel errors (ErrCapacityExceeded,
// ErrEmptyContainer, ErrIndexOutOfRange). The Unchecked view trades those
// signals for documented silent fallbacks and exposes the raw backing block;
// callers opt in per call site.
//
// Vectors have single-owner semantics: no internal locking, not safe for
// concurrent mutation. Cursors and iter sequences are invalidated by any
// operation that changes the logical size or overwrites storage.
package fixedvector
