// File: pool/recycler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared recycling core for the typed buffer pools. Built on sync.Pool
// with a factory per buffer type; counters track allocation vs reuse.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/circbuf/api"
)

// bufferFactory allocates a fresh buffer at the pool's fixed capacity.
type bufferFactory[B api.Lifecycle] func(capacity int) (B, error)

// Stats aggregates pool allocation/reuse counters.
type Stats struct {
	TotalAlloc uint64 // buffers created by the factory
	TotalReuse uint64 // Gets satisfied from the pool
	TotalPut   uint64 // buffers accepted back
}

// recycler hands out buffers of one fixed capacity. Buffers returned at a
// different capacity are released rather than pooled, so a Get never
// observes a stale size.
type recycler[B api.Lifecycle] struct {
	capacity int
	factory  bufferFactory[B]
	pool     sync.Pool

	totalAlloc atomic.Uint64
	totalReuse atomic.Uint64
	totalPut   atomic.Uint64
}

func newRecycler[B api.Lifecycle](capacity int, factory bufferFactory[B]) *recycler[B] {
	return &recycler[B]{
		capacity: capacity,
		factory:  factory,
	}
}

// get returns an allocated buffer at the pool capacity, reset and ready.
func (r *recycler[B]) get() (B, error) {
	if v := r.pool.Get(); v != nil {
		r.totalReuse.Add(1)
		return v.(B), nil
	}
	b, err := r.factory(r.capacity)
	if err != nil {
		var zero B
		return zero, err
	}
	r.totalAlloc.Add(1)
	return b, nil
}

// put recycles a buffer. Wrong-capacity or unallocated buffers are
// released instead of pooled.
func (r *recycler[B]) put(b B) {
	if !b.Initialized() || b.Cap() != r.capacity {
		b.Release()
		return
	}
	// Reset cannot fail on an initialized buffer.
	_ = b.Reset()
	r.totalPut.Add(1)
	r.pool.Put(b)
}

// stats returns a snapshot of the pool counters.
func (r *recycler[B]) stats() Stats {
	return Stats{
		TotalAlloc: r.totalAlloc.Load(),
		TotalReuse: r.totalReuse.Load(),
		TotalPut:   r.totalPut.Load(),
	}
}
