// Package tsp - solver entry points: validation, DP, tour reconstruction.

package tsp

import "math"

// startMask is the canonical seed subset: only vertex 0 placed.
const startMask = 1

// Solve computes the minimum-cost closed tour over dist with the default
// Options. See SolveWithOptions.
func Solve(dist [][]float64) (Tour, error) {
	return SolveWithOptions(dist, Options{})
}

// SolveWithOptions computes the minimum-cost Hamiltonian cycle over dist
// starting and ending at vertex 0, exactly, via Held–Karp.
//
// The input is an n×n matrix, dist[i][j] being the cost to go from vertex i
// to vertex j; math.Inf(1) marks a missing edge. The matrix is treated as
// immutable for the duration of the call and nothing allocated here outlives
// the returned Tour.
//
// Returns:
//   - Tour{Order, Cost} on success; Order has length n+1 framed by 0, and
//     Cost is the plain edge sum along Order.
//   - ErrMalformedMatrix (or a wrapping sentinel) for structural input
//     problems.
//   - ErrNoTour when the matrix is well-formed but no Hamiltonian cycle
//     exists under its reachability constraints.
//
// Degenerate instances: n == 0 yields (0, []); n == 1 yields (0, [0 0]).
//
// Repeated calls with the same matrix return identical results: the DP
// tie-break is deterministic and no randomness is involved anywhere.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
func SolveWithOptions(dist [][]float64, opts Options) (Tour, error) {
	n, err := ValidateMatrix(dist, opts)
	if err != nil {
		return Tour{}, err
	}

	// Degenerate instances short-circuit before any bitmask arithmetic:
	// for n == 0 the “all visited” constant (1<<n)-1 would equal the empty
	// set, and for n == 1 the only tour is staying put.
	if n == 0 {
		return Tour{Order: []int{}, Cost: 0}, nil
	}
	if n == 1 {
		return Tour{Order: []int{0, 0}, Cost: 0}, nil
	}

	remCost, next := heldKarp(dist, n)

	// Canonical seed: standing at vertex 0 with only vertex 0 placed.
	// +Inf here means the complete DP found no feasible cycle at all —
	// the engine reports infeasibility in-band; only the orchestrator
	// turns it into an error.
	if math.IsInf(remCost[startMask*n], 1) {
		return Tour{}, ErrNoTour
	}

	order := reconstruct(next, n)

	// Report the left-to-right edge sum over the reconstructed order rather
	// than the DP accumulator, so the returned cost matches a caller's own
	// summation over consecutive pairs digit for digit.
	total, err := TourCost(dist, order)
	if err != nil {
		return Tour{}, err
	}

	return Tour{Order: order, Cost: total}, nil
}

// reconstruct follows the next pointers from the canonical seed and returns
// the closed tour [0, …, 0] of length n+1.
//
// Precondition: the seed state is feasible (checked by the caller), hence
// every state on the chain is feasible and no -1 pointer is ever read.
//
// Complexity: O(n) time, O(n) space.
func reconstruct(next []int32, n int) []int {
	var (
		allMask = 1<<n - 1
		order   = make([]int, 0, n+1)
		mask    = startMask
		pos     = 0
		nx      int
	)
	order = append(order, 0)
	for mask != allMask {
		nx = int(next[mask*n+pos])
		order = append(order, nx)
		mask |= 1 << nx
		pos = nx
	}
	// The full-mask state stores the closing hop back to 0.
	order = append(order, int(next[mask*n+pos]))

	return order
}
