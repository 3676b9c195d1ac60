// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity generic circular buffers with manual lifecycle management.
// RingBuffer overwrites the oldest element once full and is read by offset
// back from the newest write; FifoBuffer rejects pushes once full and is
// drained in strict arrival order.
// Both are single-owner structures: no internal locking, no implicit
// reallocation. See ring.go and fifo.go for implementation details.
package buffer
