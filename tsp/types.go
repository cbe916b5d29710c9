// Package tsp — shared types and strict sentinels.
//
// The two error kinds of the public contract live here:
//
//   - ErrInvalidInput  — the point set cannot support a tour.
//   - ErrInvalidConfig — a configuration value is outside its declared
//     range. Nothing is ever clamped or defaulted silently; the caller
//     gets a typed failure before any search begins.
//
// Detail is attached by wrapping (fmt.Errorf("%w: …")); callers
// discriminate with errors.Is.
package tsp

import (
	"errors"
	"time"

	"tsptour/distmat"
)

// ErrInvalidInput signals a point set that cannot support a tour
// (no points at all, or an internal index inconsistency).
var ErrInvalidInput = errors.New("tsp: invalid input")

// ErrInvalidConfig signals a configuration value outside its declared range.
var ErrInvalidConfig = errors.New("tsp: invalid config")

// Algorithm selects the solving strategy.
type Algorithm string

const (
	// BranchAndBound is the exact solver with lower-bound pruning.
	BranchAndBound Algorithm = "branch_and_bound"
	// Genetic is the population-based heuristic solver.
	Genetic Algorithm = "genetic"
)

// MetricName selects the distance policy of the distance model.
type MetricName string

const (
	// MetricEuclidean is planar straight-line distance (the default).
	MetricEuclidean MetricName = "euclidean"
	// MetricHaversine is great-circle distance over lon/lat degrees.
	MetricHaversine MetricName = "haversine"
)

// Config carries every knob both solvers recognize. Validation is strict
// and per-algorithm: the selected algorithm's fields must be in range,
// unrelated fields are not consulted.
type Config struct {
	// Algorithm picks the solver. Required.
	Algorithm Algorithm

	// Metric picks the distance policy; empty means euclidean.
	Metric MetricName

	// Start is the tour's fixed starting point index. The exact search
	// is rooted there; heuristic results are rotated to begin there.
	Start int

	// TimeLimit bounds the Branch-and-Bound wall clock. Must be > 0 for
	// that algorithm. Exceeding it is a normal outcome, not an error:
	// the best incumbent is returned with Meta.ProvenOptimal == false.
	TimeLimit time.Duration

	// PopulationSize is the number of tours per generation (> 0).
	PopulationSize int
	// Generations is the exact number of evolution steps (> 0).
	Generations int
	// MutationProb is the per-child swap-mutation probability in [0, 1].
	MutationProb float64
	// TournamentSize is the selection sample size, 1..PopulationSize.
	TournamentSize int
	// Elitism carries the fittest individual of each generation into the
	// next unchanged, making the per-generation best non-increasing.
	Elitism bool
	// Seed feeds the single random source of the genetic run.
	// Seed == 0 selects a fixed default stream (still deterministic).
	Seed int64
}

// DefaultConfig mirrors the conventional parameterization: genetic
// algorithm, population 100, 500 generations, 2% mutation, tournament of
// 5, elitism on, and a one-minute exact-search budget.
func DefaultConfig() Config {
	return Config{
		Algorithm:      Genetic,
		Metric:         MetricEuclidean,
		Start:          0,
		TimeLimit:      60 * time.Second,
		PopulationSize: 100,
		Generations:    500,
		MutationProb:   0.02,
		TournamentSize: 5,
		Elitism:        true,
	}
}

// Meta is the per-algorithm metadata of a Result. Fields are populated
// only by the algorithm they belong to.
type Meta struct {
	// ProvenOptimal is true only when Branch-and-Bound exhausted the
	// whole search tree within its time budget.
	ProvenOptimal bool
	// NodesExplored counts the search nodes Branch-and-Bound expanded.
	NodesExplored int64

	// BestGeneration is the first generation index at which the genetic
	// run reached its best length (generation 0 = initial population).
	BestGeneration int
	// Convergence records the fittest length of every generation,
	// Generations+1 entries starting with the initial population.
	Convergence []float64
	// FinalMean and FinalStdDev summarize tour lengths of the last
	// generation's population.
	FinalMean   float64
	FinalStdDev float64
}

// Result is the common output contract of both solvers.
type Result struct {
	// Tour is the visiting order as point references, length n,
	// implicitly cyclic (the last point connects back to the first).
	Tour []distmat.Point
	// TotalDistance is the cyclic length of Tour.
	TotalDistance float64
	// Elapsed is the wall-clock duration of the solve call.
	Elapsed time.Duration
	// Meta carries algorithm-specific metadata.
	Meta Meta
}
