// File: pool/pool_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/circbuf/api"
	"github.com/momentics/circbuf/buffer"
	"github.com/momentics/circbuf/pool"
)

func TestRingPool_GetReturnsResetBuffer(t *testing.T) {
	p, err := pool.NewRingPool[int](8)
	require.NoError(t, err)

	r, err := p.Get()
	require.NoError(t, err)
	require.True(t, r.Initialized())
	assert.Equal(t, 8, r.Cap())

	require.NoError(t, r.Insert(42))
	p.Put(r)

	// Whether the next Get reuses or allocates, it must come back reset.
	r2, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, 8, r2.Cap())
	v, err := r2.Get(0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestRingPool_InvalidCapacity(t *testing.T) {
	_, err := pool.NewRingPool[int](1)
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestRingPool_WrongCapacityPutReleases(t *testing.T) {
	p, err := pool.NewRingPool[int](8)
	require.NoError(t, err)

	stray, err := buffer.NewRing[int](4)
	require.NoError(t, err)
	p.Put(stray)
	assert.False(t, stray.Initialized(), "wrong-capacity buffer must be released")

	p.Put(nil) // must not crash
}

func TestFifoPool_GetReturnsEmptyBuffer(t *testing.T) {
	p, err := pool.NewFifoPool[string](4)
	require.NoError(t, err)

	f, err := p.Get()
	require.NoError(t, err)
	require.True(t, f.Initialized())
	assert.Equal(t, 4, f.Cap())

	ok, err := f.Push("a")
	require.NoError(t, err)
	require.True(t, ok)
	p.Put(f)

	f2, err := p.Get()
	require.NoError(t, err)
	n, err := f2.Available()
	require.NoError(t, err)
	assert.Zero(t, n, "recycled buffer must come back empty")
}

func TestPool_StatsCount(t *testing.T) {
	p, err := pool.NewFifoPool[int](4)
	require.NoError(t, err)

	f, err := p.Get()
	require.NoError(t, err)
	p.Put(f)

	s := p.Stats()
	assert.GreaterOrEqual(t, s.TotalAlloc, uint64(1))
	assert.Equal(t, uint64(1), s.TotalPut)
}
