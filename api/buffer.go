// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts for fixed-capacity circular buffers with manual lifecycle.

package api

// Lifecycle is the manual allocate/reset/release contract shared by all
// buffer types. The zero value of an implementation is a valid unallocated
// buffer; every data operation on it fails with ErrNotInitialized until
// Alloc succeeds.
//
// Buffer instances are single-owner: concurrent access without external
// synchronization is undefined.
type Lifecycle interface {
	// Alloc obtains zeroed storage for capacity elements (capacity >= 2).
	// Calling it again with the current capacity is a no-op that preserves
	// contents; any other capacity drops old storage and allocates fresh.
	Alloc(capacity int) error

	// Reset zeroes all stored elements and rewinds indices, keeping the
	// allocation. Fails with ErrNotInitialized before Alloc.
	Reset() error

	// Release drops storage and returns the buffer to the unallocated
	// state. Safe to call on an unallocated buffer.
	Release()

	// Cap returns the allocated capacity, 0 when unallocated.
	Cap() int

	// Initialized reports whether storage is allocated.
	Initialized() bool
}

// Ring is a fixed-capacity circular store that always accepts writes,
// evicting the oldest element once full. Reads are by relative offset back
// from the most recent write; a never-written slot reads as T's zero value.
type Ring[T any] interface {
	Lifecycle

	// Insert stores a value, overwriting the oldest element when the ring
	// has wrapped. It never reports a full condition.
	Insert(value T) error

	// Get returns the element position steps behind the latest write,
	// 0 <= position <= Cap()-1. Position 0 is the most recent value.
	Get(position int) (T, error)

	// GetRef is Get returning a pointer into storage. The pointer stays
	// valid until the slot is overwritten by a later Insert.
	GetRef(position int) (*T, error)
}

// Fifo is a fixed-capacity circular store with strict arrival-order reads.
// Push reports full and Pop reports empty as plain booleans, not errors.
type Fifo[T any] interface {
	Lifecycle

	// Push appends a value. ok is false when the buffer is full; err is
	// non-nil only on misuse (unallocated buffer).
	Push(value T) (ok bool, err error)

	// Pop removes and returns the oldest unread value. ok is false when
	// the buffer is empty.
	Pop() (value T, ok bool, err error)

	// PopRef is Pop returning a pointer into storage. The pointer stays
	// valid until the slot is overwritten by a later Push.
	PopRef() (value *T, ok bool, err error)

	// Available returns the number of unread elements.
	Available() (int, error)
}
