package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tsptour/distmat"
)

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, validatePermutation([]int{0}, 1))
	require.NoError(t, validatePermutation([]int{2, 0, 1}, 3))

	require.ErrorIs(t, validatePermutation([]int{0, 0, 1}, 3), ErrInvalidInput)
	require.ErrorIs(t, validatePermutation([]int{0, 1}, 3), ErrInvalidInput)
	require.ErrorIs(t, validatePermutation([]int{0, 1, 3}, 3), ErrInvalidInput)
	require.ErrorIs(t, validatePermutation([]int{0, -1, 2}, 3), ErrInvalidInput)
	require.ErrorIs(t, validatePermutation(nil, 0), ErrInvalidInput)
}

func TestRotateToStart(t *testing.T) {
	perm := []int{3, 1, 4, 0, 2}

	rotated := rotateToStart(perm, 0)
	require.Equal(t, []int{0, 2, 3, 1, 4}, rotated)
	require.Equal(t, []int{3, 1, 4, 0, 2}, perm, "input must stay untouched")

	require.Equal(t, perm, rotateToStart(perm, 3), "already in place")
}

func TestCycleLength_RotationInvariant(t *testing.T) {
	m, err := distmat.Build([]distmat.Point{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 0, Y: 1},
		{Name: "c", X: 1, Y: 1},
		{Name: "d", X: 1, Y: 0},
	}, nil)
	require.NoError(t, err)

	w := prefetchDense(m)
	perim := []int{0, 1, 2, 3}
	require.Equal(t, 4.0, cycleLength(w, 4, perim))
	require.Equal(t, 4.0, cycleLength(w, 4, rotateToStart(perim, 2)),
		"cyclic length is rotation-invariant")

	// A diagonal tour is strictly longer than the perimeter.
	require.Greater(t, cycleLength(w, 4, []int{0, 2, 1, 3}), 4.0)
}

func TestPrefetchDense_MirrorsMatrix(t *testing.T) {
	m, err := distmat.Build([]distmat.Point{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 3, Y: 4},
		{Name: "c", X: 6, Y: 8},
	}, nil)
	require.NoError(t, err)

	w := prefetchDense(m)
	n := m.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, m.Distance(i, j), w[i*n+j])
		}
	}
}

func TestRound1e9(t *testing.T) {
	require.Equal(t, 1.0, round1e9(1.0000000001))
	require.Equal(t, 1.5, round1e9(1.5))
	require.Equal(t, 0.0, round1e9(0.0000000004))
}
