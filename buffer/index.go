// File: buffer/index.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wraparound index arithmetic shared by RingBuffer and FifoBuffer.
// Go's % keeps the sign of the dividend, so backward steps compensate
// explicitly instead of relying on modulo of a negative value.

package buffer

import "github.com/momentics/circbuf/api"

// advance moves an index one slot forward, wrapping at capacity.
func advance(i, capacity int) int {
	i++
	if i >= capacity {
		return 0
	}
	return i
}

// stepBack moves an index steps slots backward, wrapping at capacity.
// Requires 0 <= i < capacity and 0 <= steps < capacity.
func stepBack(i, steps, capacity int) int {
	i -= steps
	if i < 0 {
		i += capacity
	}
	return i
}

// slot resolves the storage index offset slots ahead of tail.
// Requires 0 <= tail < capacity and 0 <= offset <= capacity.
func slot(tail, offset, capacity int) int {
	return (tail + offset) % capacity
}

// minCapacity is the smallest storage a circular buffer may hold; anything
// below cannot wrap meaningfully.
const minCapacity = 2

// allocStorage obtains zeroed storage for n elements, translating an
// allocator fault into api.ErrAllocationFailure instead of crashing the
// caller.
func allocStorage[T any](n int) (s []T, err error) {
	defer func() {
		if recover() != nil {
			s = nil
			err = api.ErrAllocationFailure
		}
	}()
	return make([]T, n), nil
}
