// Package distmat provides the distance model shared by all tour solvers.
//
// It holds three small pieces:
//
//   - Point — a named, immutable 2-D coordinate pair.
//   - Metric — a distance policy between two points. Euclidean is the
//     default; Haversine interprets coordinates as lon/lat degrees and
//     measures great-circle metres. Geographic semantics are never
//     assumed implicitly.
//   - Matrix — the pairwise distance table, computed once in O(n²) and
//     read-only afterwards. Symmetry is structural: distances are stored
//     in a symmetric dense matrix, so Distance(i, j) and Distance(j, i)
//     read the same cell and agree bit-for-bit.
//
// A built Matrix owns a private copy of its points and never mutates;
// it may be shared read-only across concurrent solver invocations.
package distmat
