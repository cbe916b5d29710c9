// Package tsp — validation shared by both solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — only sentinels from types.go,
//     wrapped with enough detail to name the offending field.
//   - Everything is checked before any search begins; nothing is clamped.
package tsp

import "fmt"

// validateConfig checks the fields the selected algorithm consults.
//
// Complexity: O(1).
func validateConfig(cfg Config) error {
	switch cfg.Metric {
	case "", MetricEuclidean, MetricHaversine:
		// ok
	default:
		return fmt.Errorf("%w: unknown metric %q", ErrInvalidConfig, cfg.Metric)
	}

	switch cfg.Algorithm {
	case BranchAndBound:
		if cfg.TimeLimit <= 0 {
			return fmt.Errorf("%w: time limit must be positive, got %s", ErrInvalidConfig, cfg.TimeLimit)
		}
	case Genetic:
		return validateGenetic(cfg)
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, cfg.Algorithm)
	}

	return nil
}

// validateGenetic enforces the declared ranges of every genetic knob.
//
// Complexity: O(1).
func validateGenetic(cfg Config) error {
	if cfg.PopulationSize <= 0 {
		return fmt.Errorf("%w: population size must be > 0, got %d", ErrInvalidConfig, cfg.PopulationSize)
	}
	if cfg.Generations <= 0 {
		return fmt.Errorf("%w: generations must be > 0, got %d", ErrInvalidConfig, cfg.Generations)
	}
	if cfg.MutationProb < 0 || cfg.MutationProb > 1 {
		return fmt.Errorf("%w: mutation probability must be in [0,1], got %g", ErrInvalidConfig, cfg.MutationProb)
	}
	if cfg.TournamentSize < 1 || cfg.TournamentSize > cfg.PopulationSize {
		return fmt.Errorf("%w: tournament size must be in [1,%d], got %d",
			ErrInvalidConfig, cfg.PopulationSize, cfg.TournamentSize)
	}

	return nil
}

// validateStart verifies that start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start index %d out of range [0,%d)", ErrInvalidConfig, start, n)
	}

	return nil
}
