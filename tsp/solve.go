// Package tsp — unified dispatcher.
//
// Solve is the canonical entry point: it validates the configuration
// before anything else, builds the distance matrix once, and routes to
// the selected algorithm. SolveMatrix does the same over a prebuilt
// matrix, for callers that share one read-only matrix across runs.
//
// Design principles:
//   - Strict validation up front; typed sentinels, never clamping.
//   - Deterministic: seeded randomness only, no hidden state.
//   - The returned tour is expressed as point references (never raw
//     indices), rotated so it begins at the configured start point.
package tsp

import (
	"fmt"
	"time"

	"tsptour/distmat"
)

// Solve computes a tour over points according to cfg.
//
// Errors: ErrInvalidConfig for any out-of-range configuration value,
// ErrInvalidInput when the point set cannot support a tour.
//
// Complexity: O(n²) matrix construction plus the chosen algorithm.
func Solve(points []distmat.Point, cfg Config) (Result, error) {
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	m, err := distmat.Build(points, metricFor(cfg.Metric))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	return SolveMatrix(m, cfg)
}

// SolveMatrix computes a tour over a prebuilt distance matrix. The
// matrix is read-only for the whole call and may be shared with other
// concurrent SolveMatrix calls; all mutable state is call-local.
func SolveMatrix(m *distmat.Matrix, cfg Config) (Result, error) {
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	n := m.Len()
	if err := validateStart(n, cfg.Start); err != nil {
		return Result{}, err
	}

	// A single point has the trivial tour of length zero; no search.
	if n == 1 {
		return Result{
			Tour:          m.Points(),
			TotalDistance: 0,
			Meta:          Meta{ProvenOptimal: true},
		}, nil
	}

	var (
		began = time.Now()
		w     = prefetchDense(m)
		perm  []int
		cost  float64
		meta  Meta
	)

	switch cfg.Algorithm {
	case BranchAndBound:
		var nodes int64
		var proven bool
		perm, cost, nodes, proven = branchAndBound(w, n, cfg.Start, cfg.TimeLimit)
		meta = Meta{ProvenOptimal: proven, NodesExplored: nodes}

	case Genetic:
		perm, cost, meta = runGenetic(w, n, cfg)
		perm = rotateToStart(perm, cfg.Start)

	default:
		// Unreachable after validateConfig; kept as a hard guard.
		return Result{}, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, cfg.Algorithm)
	}

	if err := validatePermutation(perm, n); err != nil {
		return Result{}, err
	}

	return Result{
		Tour:          resolvePoints(m, perm),
		TotalDistance: cost,
		Elapsed:       time.Since(began),
		Meta:          meta,
	}, nil
}

// metricFor maps the config name to a distmat policy.
// Unknown names are rejected earlier by validateConfig.
func metricFor(name MetricName) distmat.Metric {
	if name == MetricHaversine {
		return distmat.Haversine
	}

	return distmat.Euclidean
}

// resolvePoints converts internal indices into point references so that
// downstream consumers need no knowledge of internal indexing.
func resolvePoints(m *distmat.Matrix, perm []int) []distmat.Point {
	var (
		pts = m.Points()
		out = make([]distmat.Point, len(perm))
		i   int
	)
	for i = 0; i < len(perm); i++ {
		out[i] = pts[perm[i]]
	}

	return out
}
