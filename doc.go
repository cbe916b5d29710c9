// Package tsptour computes short closed tours over a set of named 2-D
// points — the classic Travelling Salesman Problem — with two
// interchangeable solving strategies sharing one distance model.
//
// What is inside:
//
//	distmat/     — the Distance Model: points, metric policy (planar
//	               Euclidean by default, great-circle opt-in), and an
//	               immutable pairwise distance matrix built once per solve
//	tsp/         — THE CORE: an exact Branch-and-Bound search with
//	               lower-bound pruning and a wall-clock budget, and a
//	               heuristic Genetic Algorithm (tournament selection,
//	               ordered crossover, swap mutation, elitism)
//	cityfile/    — JSON city loading, solution export, YAML configuration
//	cmd/tsptour/ — the command-line entrypoint
//
// Both solvers consume the same read-only distance matrix and return the
// same Result contract: a tour expressed as point references, its total
// cyclic length, elapsed time, and per-algorithm metadata (optimality
// proof and node counts for Branch-and-Bound; best generation and
// convergence history for the Genetic Algorithm).
//
// Quick start:
//
//	points, err := cityfile.Load("cities.json")
//	cfg := tsp.DefaultConfig()
//	cfg.Algorithm = tsp.BranchAndBound
//	res, err := tsp.Solve(points, cfg)
//
// All randomness in the Genetic Algorithm flows from a single seedable
// source (Config.Seed), so a fixed seed reproduces an identical run.
package tsptour
