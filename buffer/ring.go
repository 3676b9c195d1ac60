// File: buffer/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a fixed-capacity circular store that always accepts writes
// and evicts the oldest value once full. Well suited for keeping the last n
// samples of a discrete-time signal or log tail.

package buffer

import (
	"fmt"

	"github.com/momentics/circbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer holds the last Cap() values written, readable by offset back
// from the newest write. The zero value is a valid unallocated buffer;
// nil storage doubles as the uninitialized flag.
//
// A ring has no emptiness notion: slots never written read back as T's
// zero value.
type RingBuffer[T any] struct {
	data     []T
	writeIdx int
}

// NewRing allocates a ring buffer of the given capacity (>= 2).
func NewRing[T any](capacity int) (*RingBuffer[T], error) {
	r := &RingBuffer[T]{}
	if err := r.Alloc(capacity); err != nil {
		return nil, err
	}
	return r, nil
}

// Alloc obtains zeroed storage for capacity elements. If the ring is
// already allocated at exactly this capacity the call is a no-op and
// contents are preserved; otherwise old storage is dropped and fresh
// zeroed storage takes its place.
func (r *RingBuffer[T]) Alloc(capacity int) error {
	if capacity < minCapacity {
		return api.NewError(api.ErrCodeInvalidArgument,
			fmt.Sprintf("ring capacity must be >= %d", minCapacity)).
			WithContext("capacity", capacity)
	}
	if r.data != nil && len(r.data) == capacity {
		return nil
	}
	s, err := allocStorage[T](capacity)
	if err != nil {
		return err
	}
	r.data = s
	r.writeIdx = 0
	return nil
}

// Release drops storage and returns the ring to the unallocated state.
// No-op on an unallocated ring.
func (r *RingBuffer[T]) Release() {
	r.data = nil
	r.writeIdx = 0
}

// Reset zeroes all elements and rewinds the write index, keeping the
// allocation.
func (r *RingBuffer[T]) Reset() error {
	if r.data == nil {
		return api.ErrNotInitialized
	}
	clear(r.data)
	r.writeIdx = 0
	return nil
}

// Insert stores a value one slot ahead of the previous write, overwriting
// the oldest element once the ring has wrapped. Never reports full.
func (r *RingBuffer[T]) Insert(value T) error {
	if r.data == nil {
		return api.ErrNotInitialized
	}
	r.writeIdx = advance(r.writeIdx, len(r.data))
	r.data[r.writeIdx] = value
	return nil
}

// Get returns the value position steps behind the latest write; position 0
// is the most recent value. Valid positions are [0, Cap()-1].
func (r *RingBuffer[T]) Get(position int) (T, error) {
	p, err := r.GetRef(position)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// GetRef is Get returning a pointer into storage; the pointer stays valid
// until the slot is overwritten by a later Insert.
func (r *RingBuffer[T]) GetRef(position int) (*T, error) {
	if r.data == nil {
		return nil, api.ErrNotInitialized
	}
	if position < 0 || position > len(r.data)-1 {
		return nil, api.NewError(api.ErrCodeOutOfRange,
			"ring read position out of range").
			WithContext("position", position).
			WithContext("capacity", len(r.data))
	}
	return &r.data[stepBack(r.writeIdx, position, len(r.data))], nil
}

// Cap returns the allocated capacity, 0 when unallocated.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// Initialized reports whether storage is allocated.
func (r *RingBuffer[T]) Initialized() bool {
	return r.data != nil
}
