// Package pool
// Author: momentics <momentics@gmail.com>
//
// Recycling pools over the circbuf buffer types. Hot paths that burn
// through short-lived buffers Get an allocated, reset instance and Put it
// back instead of paying Alloc on every use.
// See recycler.go, ringpool.go, fifopool.go for implementation details.
package pool
