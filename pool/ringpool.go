// File: pool/ringpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingPool[T] recycles RingBuffer instances of one fixed capacity.

package pool

import (
	"github.com/momentics/circbuf/buffer"
)

// RingPool hands out allocated, reset ring buffers of a fixed capacity.
type RingPool[T any] struct {
	rec *recycler[*buffer.RingBuffer[T]]
}

// NewRingPool creates a pool of ring buffers with the given capacity (>= 2).
func NewRingPool[T any](capacity int) (*RingPool[T], error) {
	// Probe the capacity once so a bad pool fails at construction,
	// not on first Get.
	probe, err := buffer.NewRing[T](capacity)
	if err != nil {
		return nil, err
	}
	p := &RingPool[T]{rec: newRecycler(capacity, buffer.NewRing[T])}
	p.rec.totalAlloc.Add(1)
	p.rec.pool.Put(probe)
	return p, nil
}

// Get returns an allocated, reset ring buffer at the pool capacity.
func (p *RingPool[T]) Get() (*buffer.RingBuffer[T], error) {
	return p.rec.get()
}

// Put recycles a ring buffer; buffers of another capacity are released.
func (p *RingPool[T]) Put(r *buffer.RingBuffer[T]) {
	if r == nil {
		return
	}
	p.rec.put(r)
}

// Stats returns a snapshot of the pool counters.
func (p *RingPool[T]) Stats() Stats {
	return p.rec.stats()
}
