// Package tsp — cost utility shared by the solver and its callers.
//
// TourCost is intentionally defensive: solvers validate inputs upfront, but
// the helper is public and also guards against misuse on its own.

package tsp

import "math"

// TourCost sums the edge costs along the closed walk order[0]→…→order[k]
// under dist, left to right.
//
// Checks performed per edge:
//   - both endpoints within the matrix bounds (⇒ ErrBadTour),
//   - weight not NaN/-Inf (⇒ ErrInvalidWeight),
//   - weight non-negative (⇒ ErrNegativeWeight),
//   - weight finite: an unreachable edge on the walk means no usable tour
//     (⇒ ErrNoTour) — the +Inf sentinel is never reported as a cost.
//
// Complexity: O(len(order)) time, O(1) space.
func TourCost(dist [][]float64, order []int) (float64, error) {
	if len(order) < 2 {
		return 0, ErrBadTour
	}

	var (
		n    = len(dist)
		sum  float64 // running total
		i    int     // edge index
		u, v int     // edge endpoints
		w    float64 // edge weight
	)
	for i = 0; i < len(order)-1; i++ {
		u, v = order[i], order[i+1]
		if u < 0 || u >= n || v < 0 || v >= len(dist[u]) {
			return 0, ErrBadTour
		}
		w = dist[u][v]
		if math.IsNaN(w) || math.IsInf(w, -1) {
			return 0, ErrInvalidWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		if math.IsInf(w, 1) {
			return 0, ErrNoTour
		}
		sum += w
	}

	return sum, nil
}
