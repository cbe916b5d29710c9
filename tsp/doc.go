// Package tsp provides Travelling Salesman Problem solvers.
//
// It includes two algorithms over a distmat.Matrix:
//
//   - BranchAndBound — exact depth-first search with lower-bound pruning
//     and a wall-clock budget. Returns a provably optimal tour when the
//     tree is exhausted in time, otherwise the best incumbent found, and
//     says which of the two happened (Meta.ProvenOptimal).
//
//   - Genetic — population-based stochastic optimizer: tournament
//     selection, ordered crossover, swap mutation, optional elitism.
//     Scales to instances far beyond exhaustive search; never fails on a
//     valid configuration, only degrades in quality.
//
// Both solvers are single-threaded, run to synchronous completion, and
// own all of their mutable state; the distance matrix they share is
// read-only. All stochastic choices draw from one seedable source
// (Config.Seed), so a fixed seed reproduces an identical run end-to-end.
//
// Entry points: Solve (builds the matrix from points) and SolveMatrix
// (for a prebuilt, possibly shared, matrix).
package tsp
