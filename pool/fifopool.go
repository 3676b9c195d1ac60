// File: pool/fifopool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FifoPool[T] recycles FifoBuffer instances of one fixed capacity.

package pool

import (
	"github.com/momentics/circbuf/buffer"
)

// FifoPool hands out allocated, reset FIFO buffers of a fixed capacity.
type FifoPool[T any] struct {
	rec *recycler[*buffer.FifoBuffer[T]]
}

// NewFifoPool creates a pool of FIFO buffers with the given capacity (>= 2).
func NewFifoPool[T any](capacity int) (*FifoPool[T], error) {
	probe, err := buffer.NewFifo[T](capacity)
	if err != nil {
		return nil, err
	}
	p := &FifoPool[T]{rec: newRecycler(capacity, buffer.NewFifo[T])}
	p.rec.totalAlloc.Add(1)
	p.rec.pool.Put(probe)
	return p, nil
}

// Get returns an allocated, reset FIFO buffer at the pool capacity.
func (p *FifoPool[T]) Get() (*buffer.FifoBuffer[T], error) {
	return p.rec.get()
}

// Put recycles a FIFO buffer; buffers of another capacity are released.
func (p *FifoPool[T]) Put(f *buffer.FifoBuffer[T]) {
	if f == nil {
		return
	}
	p.rec.put(f)
}

// Stats returns a snapshot of the pool counters.
func (p *FifoPool[T]) Stats() Stats {
	return p.rec.stats()
}
