package tsp

import "math"

// heldKarp fills the Held–Karp suffix DP tables for an n-vertex instance.
//
// State: (pos, mask), where mask is the bit-set of vertices already placed
// on the partial tour (bit 0 is set in every reachable state) and pos is the
// vertex the partial tour currently ends at. For the flat index
// idx = mask*n + pos:
//
//   - remCost[idx] is the minimum cost to visit every vertex outside mask
//     exactly once and then return to vertex 0; +Inf when no such
//     continuation exists.
//   - next[idx] is the first vertex of that optimal continuation, or -1
//     when the state is infeasible. A -1 pointer is the explicit “no
//     continuation” marker: reconstruction never follows it, and an +Inf
//     cost never carries a materialized path.
//
// Base case (mask == all vertices): the only remaining move is closing the
// cycle back to 0, so remCost = dist[pos][0] — legitimately +Inf when that
// closing edge is missing.
//
// Recurrence: minimum over every unvisited nxt with a finite edge pos→nxt
// of dist[pos][nxt] + remCost[state(nxt, mask|bit(nxt))]. An unreachable
// successor contributes +Inf and is never selected, so ∞+∞ is never formed.
//
// The tables are filled iteratively over masks in descending order, which
// guarantees every successor state (a strict superset mask) is final before
// it is read — the memoized recursion of the textbook formulation without
// call stacks or recursion depth. Each state is computed exactly once.
// Masks not containing bit 0 are unreachable from the canonical seed and
// are skipped.
//
// Ties: candidates are scanned in ascending vertex order under a strict
// less-than comparison, so the smallest vertex index achieving the minimum
// wins. Reconstruction is therefore fully deterministic.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
func heldKarp(dist [][]float64, n int) (remCost []float64, next []int32) {
	var (
		allMask = 1<<n - 1   // full visited set
		size    = (1 << n) * n
	)
	remCost = make([]float64, size)
	next = make([]int32, size)

	var i int
	for i = 0; i < size; i++ {
		remCost[i] = math.Inf(1) // “not computed / infeasible”
		next[i] = -1             // no continuation
	}

	var (
		mask, pos, nxt int     // state under evaluation and candidate move
		idx            int     // flat index of (pos, mask)
		edge, cand     float64 // edge cost and candidate total
		best           float64 // running minimum over candidates
		bestNxt        int32   // first vertex of the best continuation
	)
	for mask = allMask; mask >= 1; mask-- {
		if mask&1 == 0 {
			continue // vertex 0 not placed: unreachable from the seed
		}
		for pos = 0; pos < n; pos++ {
			if mask&(1<<pos) == 0 {
				continue // pos not in mask: not a valid state
			}
			idx = mask*n + pos

			if mask == allMask {
				// Close the cycle back to the start.
				remCost[idx] = dist[pos][0]
				next[idx] = 0
				continue
			}

			best = math.Inf(1)
			bestNxt = -1
			for nxt = 0; nxt < n; nxt++ {
				if mask&(1<<nxt) != 0 {
					continue // already visited
				}
				edge = dist[pos][nxt]
				if math.IsInf(edge, 1) {
					continue // no direct route pos→nxt
				}
				cand = edge + remCost[(mask|1<<nxt)*n+nxt]
				if cand < best {
					best = cand
					bestNxt = int32(nxt)
				}
			}
			remCost[idx] = best
			next[idx] = bestNxt
		}
	}

	return remCost, next
}
