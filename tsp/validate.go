// Package tsp - input validation shared by the solver entry points.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst case; no allocations.

package tsp

import "math"

// ValidateMatrix verifies the structural contract of a distance matrix and
// returns its order n on success.
//
// Contract:
//   - every row must have exactly len(dist) entries (square matrix),
//   - n ≤ MaxNodes,
//   - the diagonal must be zero: +Inf or NaN on the diagonal is always
//     rejected; a finite nonzero entry is rejected unless opts.ZeroDiagonal,
//   - off-diagonal entries must be non-negative and not NaN/-Inf; +Inf is
//     the legal “unreachable” sentinel.
//
// n == 0 and n == 1 are accepted: both degenerate to trivial tours and are
// short-circuited by Solve before any bitmask arithmetic.
//
// Complexity: O(n²) time, O(1) space.
func ValidateMatrix(dist [][]float64, opts Options) (int, error) {
	var n = len(dist)
	if n == 0 {
		return 0, nil
	}
	if n > MaxNodes {
		return 0, ErrTooManyNodes
	}

	var (
		i, j int     // loop indices
		w    float64 // entry under inspection
	)

	// Stage 1: shape — reject ragged rows before touching any entry.
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}

	// Stage 2: diagonal.
	for i = 0; i < n; i++ {
		w = dist[i][i]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrBadDiagonal
		}
		if w != 0 && !opts.ZeroDiagonal {
			return 0, ErrBadDiagonal
		}
	}

	// Stage 3: off-diagonal entries.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // already checked
			}
			w = dist[i][j]
			if math.IsNaN(w) || math.IsInf(w, -1) {
				return 0, ErrInvalidWeight
			}
			if w < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	return n, nil
}
