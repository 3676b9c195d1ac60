// File: buffer/index_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_Wraps(t *testing.T) {
	cases := []struct {
		i, capacity, want int
	}{
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
		{0, 2, 1},
		{1, 2, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, advance(c.i, c.capacity),
			"advance(%d, %d)", c.i, c.capacity)
	}
}

func TestStepBack_GuardsNegative(t *testing.T) {
	cases := []struct {
		i, steps, capacity, want int
	}{
		{0, 0, 3, 0},
		{2, 1, 3, 1},
		{0, 1, 3, 2},
		{0, 2, 3, 1},
		{1, 2, 3, 2},
		{4, 4, 5, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stepBack(c.i, c.steps, c.capacity),
			"stepBack(%d, %d, %d)", c.i, c.steps, c.capacity)
	}
}

func TestSlot_WrapsForward(t *testing.T) {
	cases := []struct {
		tail, offset, capacity, want int
	}{
		{0, 0, 3, 0},
		{2, 1, 3, 0},
		{2, 2, 3, 1},
		{1, 3, 4, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, slot(c.tail, c.offset, c.capacity),
			"slot(%d, %d, %d)", c.tail, c.offset, c.capacity)
	}
}

func TestAllocStorage_Zeroed(t *testing.T) {
	s, err := allocStorage[int](4)
	require.NoError(t, err)
	require.Len(t, s, 4)
	for i, v := range s {
		assert.Zero(t, v, "slot %d", i)
	}
}
