// File: buffer/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FifoBuffer is a fixed-capacity circular store drained in strict arrival
// order. Unlike RingBuffer it never overwrites: a push against a full
// buffer is refused, reported as a plain boolean the caller polls for.

package buffer

import (
	"fmt"

	"github.com/momentics/circbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.Fifo[any] = (*FifoBuffer[any])(nil)

// FifoBuffer queues up to Cap() values between a producer and a consumer.
// The zero value is a valid unallocated buffer; nil storage doubles as the
// uninitialized flag.
//
// Invariant: 0 <= available <= Cap(); the unread elements occupy slots
// tail .. tail+available-1 modulo Cap().
type FifoBuffer[T any] struct {
	data      []T
	tail      int
	available int
}

// NewFifo allocates a FIFO buffer of the given capacity (>= 2).
func NewFifo[T any](capacity int) (*FifoBuffer[T], error) {
	f := &FifoBuffer[T]{}
	if err := f.Alloc(capacity); err != nil {
		return nil, err
	}
	return f, nil
}

// Alloc obtains zeroed storage for capacity elements. If the buffer is
// already allocated at exactly this capacity the call is a no-op and
// contents are preserved; otherwise old storage is dropped and fresh
// zeroed storage takes its place.
func (f *FifoBuffer[T]) Alloc(capacity int) error {
	if capacity < minCapacity {
		return api.NewError(api.ErrCodeInvalidArgument,
			fmt.Sprintf("fifo capacity must be >= %d", minCapacity)).
			WithContext("capacity", capacity)
	}
	if f.data != nil && len(f.data) == capacity {
		return nil
	}
	s, err := allocStorage[T](capacity)
	if err != nil {
		return err
	}
	f.data = s
	f.tail = 0
	f.available = 0
	return nil
}

// Release drops storage and returns the buffer to the unallocated state.
// No-op on an unallocated buffer.
func (f *FifoBuffer[T]) Release() {
	f.data = nil
	f.tail = 0
	f.available = 0
}

// Reset zeroes all elements and rewinds tail and available, keeping the
// allocation.
func (f *FifoBuffer[T]) Reset() error {
	if f.data == nil {
		return api.ErrNotInitialized
	}
	clear(f.data)
	f.tail = 0
	f.available = 0
	return nil
}

// Push appends a value behind the unread region. ok is false when the
// buffer is full; the value is dropped and state is unchanged.
func (f *FifoBuffer[T]) Push(value T) (bool, error) {
	if f.data == nil {
		return false, api.ErrNotInitialized
	}
	if f.available == len(f.data) {
		return false, nil
	}
	f.data[slot(f.tail, f.available, len(f.data))] = value
	f.available++
	return true, nil
}

// Pop removes and returns the oldest unread value. ok is false when the
// buffer is empty; state is unchanged in that case.
func (f *FifoBuffer[T]) Pop() (T, bool, error) {
	p, ok, err := f.PopRef()
	if !ok {
		var zero T
		return zero, ok, err
	}
	return *p, true, nil
}

// PopRef is Pop returning a pointer into storage; the pointer stays valid
// until the slot is overwritten by a later Push.
func (f *FifoBuffer[T]) PopRef() (*T, bool, error) {
	if f.data == nil {
		return nil, false, api.ErrNotInitialized
	}
	if f.available == 0 {
		return nil, false, nil
	}
	p := &f.data[f.tail]
	f.available--
	f.tail = advance(f.tail, len(f.data))
	return p, true, nil
}

// Available returns the number of unread elements.
func (f *FifoBuffer[T]) Available() (int, error) {
	if f.data == nil {
		return 0, api.ErrNotInitialized
	}
	return f.available, nil
}

// Cap returns the allocated capacity, 0 when unallocated.
func (f *FifoBuffer[T]) Cap() int {
	return len(f.data)
}

// Initialized reports whether storage is allocated.
func (f *FifoBuffer[T]) Initialized() bool {
	return f.data != nil
}
