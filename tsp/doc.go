// Package tsp solves the Travelling Salesman Problem exactly on a
// precomputed distance matrix ([][]float64) using the Held–Karp
// dynamic-programming algorithm.
//
//   - Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//
//   - Supports “missing” edges via math.Inf(1).
//
//   - Vertex 0 is the fixed start and end of every tour.
//
// The matrix may be asymmetric (dist[i][j] ≠ dist[j][i] is allowed); the
// diagonal must be zero. A value of math.Inf(1) signals “no direct route.”
// If no Hamiltonian cycle exists, Solve returns ErrNoTour; structural
// problems with the matrix are reported as ErrMalformedMatrix (or one of
// the more precise sentinels wrapping it).
//
// The package is deliberately pure: no logging, no I/O, no goroutines.
// All solver state lives in arenas allocated per call, so concurrent
// Solve invocations are independent without any locking.
//
// Use Solve for instances up to MaxNodes vertices; beyond that the
// exponential state space is no longer tractable.
package tsp
