// Package tsp: sentinel error set and public result types.
// All solver entry points MUST return these sentinels and tests MUST match
// them via errors.Is. No function in this package panics on user input.

package tsp

import (
	"errors"
	"fmt"
)

// MaxNodes is the largest instance Solve accepts. The DP arenas hold
// n·2ⁿ entries; at n=20 that is already ~250 MB, and every extra vertex
// doubles it.
const MaxNodes = 20

// ErrMalformedMatrix classifies every structural problem with the input
// matrix. The precise sentinels below wrap it, so callers may match either
// the class (errors.Is(err, ErrMalformedMatrix)) or the exact cause.
var ErrMalformedMatrix = errors.New("tsp: malformed distance matrix")

var (
	// ErrNonSquare signals a ragged matrix: some row's length differs from
	// the number of rows.
	ErrNonSquare = fmt.Errorf("%w: not square", ErrMalformedMatrix)

	// ErrNegativeWeight signals a negative off-diagonal entry.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrMalformedMatrix)

	// ErrInvalidWeight signals a NaN or -Inf entry anywhere in the matrix.
	// Only non-negative finite weights and the +Inf “unreachable” sentinel
	// are meaningful.
	ErrInvalidWeight = fmt.Errorf("%w: NaN or -Inf edge weight", ErrMalformedMatrix)

	// ErrBadDiagonal signals a diagonal entry that is not zero. The +Inf
	// sentinel on the diagonal is always rejected; a finite nonzero entry is
	// rejected unless Options.ZeroDiagonal tolerates it.
	ErrBadDiagonal = fmt.Errorf("%w: diagonal must be zero", ErrMalformedMatrix)

	// ErrTooManyNodes signals an instance beyond MaxNodes vertices.
	ErrTooManyNodes = fmt.Errorf("%w: more than %d vertices", ErrMalformedMatrix, MaxNodes)
)

// ErrNoTour is returned when the matrix is well-formed but admits no
// Hamiltonian cycle under its reachability constraints. It is a legitimate
// negative result, distinct from malformed input; callers are expected to
// present the two differently.
var ErrNoTour = errors.New("tsp: no feasible tour")

// ErrBadTour is returned by TourCost when the order slice does not describe
// a closed walk over valid vertex indices.
var ErrBadTour = errors.New("tsp: order is not a closed walk")

// Tour is the outcome of a solve: the optimal visiting order and its cost.
type Tour struct {
	// Order is the sequence of vertex indices, starting and ending at 0.
	// For n vertices, len(Order) == n+1 and Order[0] == Order[n] == 0.
	// n == 0 yields an empty Order.
	Order []int

	// Cost is the total distance of the cycle: the plain left-to-right sum
	// of dist[Order[i]][Order[i+1]] over all consecutive pairs.
	Cost float64
}

// Options configures a Solve call.
type Options struct {
	// ZeroDiagonal treats finite nonzero diagonal entries as zero instead of
	// rejecting the matrix. The matrix itself is never mutated — it is owned
	// by the caller and read-only for the duration of the call. A +Inf
	// diagonal entry is rejected regardless.
	ZeroDiagonal bool
}
