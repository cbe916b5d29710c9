package distmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"tsptour/distmat"
)

func squarePoints() []distmat.Point {
	return []distmat.Point{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 0, Y: 1},
		{Name: "C", X: 1, Y: 1},
		{Name: "D", X: 1, Y: 0},
	}
}

func TestBuild_NoPoints(t *testing.T) {
	_, err := distmat.Build(nil, nil)
	require.ErrorIs(t, err, distmat.ErrNoPoints)

	_, err = distmat.Build([]distmat.Point{}, distmat.Euclidean)
	require.ErrorIs(t, err, distmat.ErrNoPoints)
}

func TestBuild_SinglePoint(t *testing.T) {
	m, err := distmat.Build([]distmat.Point{{Name: "only", X: 3, Y: 4}}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	require.Zero(t, m.Distance(0, 0))
}

func TestMatrix_SymmetryAndDiagonal(t *testing.T) {
	m, err := distmat.Build(squarePoints(), distmat.Euclidean)
	require.NoError(t, err)

	for i := 0; i < m.Len(); i++ {
		require.Zero(t, m.Distance(i, i), "diagonal must be exactly zero")
		for j := 0; j < m.Len(); j++ {
			// Bit-exact symmetry: both lookups read the same cell.
			require.True(t, m.Distance(i, j) == m.Distance(j, i),
				"distance(%d,%d) != distance(%d,%d)", i, j, j, i)
		}
	}
}

func TestMatrix_EuclideanValues(t *testing.T) {
	m, err := distmat.Build(squarePoints(), nil) // nil metric ⇒ Euclidean
	require.NoError(t, err)

	require.Equal(t, 1.0, m.Distance(0, 1))
	require.Equal(t, 1.0, m.Distance(1, 2))
	require.InDelta(t, math.Sqrt2, m.Distance(0, 2), 1e-12)
}

func TestMatrix_HaversineValues(t *testing.T) {
	pts := []distmat.Point{
		{Name: "origin", X: 0, Y: 0},
		{Name: "east", X: 1, Y: 0}, // one degree of longitude at the equator
	}
	m, err := distmat.Build(pts, distmat.Haversine)
	require.NoError(t, err)

	// One equatorial degree ≈ 111.195 km for the mean Earth radius.
	require.InDelta(t, 111194.9, m.Distance(0, 1), 1.0)
	require.Zero(t, m.Distance(0, 0))
}

func TestMatrix_PointsAreCopies(t *testing.T) {
	src := squarePoints()
	m, err := distmat.Build(src, nil)
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the matrix.
	src[0].Name = "mutated"
	p, err := m.Point(0)
	require.NoError(t, err)
	require.Equal(t, "A", p.Name)

	// Mutating the returned copy must not affect later reads.
	out := m.Points()
	out[1].Name = "mutated"
	again := m.Points()
	require.Equal(t, "B", again[1].Name)
}

func TestMatrix_PointOutOfRange(t *testing.T) {
	m, err := distmat.Build(squarePoints(), nil)
	require.NoError(t, err)

	_, err = m.Point(-1)
	require.ErrorIs(t, err, distmat.ErrIndexOutOfRange)
	_, err = m.Point(4)
	require.ErrorIs(t, err, distmat.ErrIndexOutOfRange)
}
