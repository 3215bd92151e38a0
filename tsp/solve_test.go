package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/tsp"
)

func TestSolve_Degenerate(t *testing.T) {
	// n == 0: trivial empty tour.
	tour, err := tsp.Solve(nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, tour.Cost)
	require.Empty(t, tour.Order)

	tour, err = tsp.Solve([][]float64{})
	require.NoError(t, err)
	require.Equal(t, 0.0, tour.Cost)
	require.Empty(t, tour.Order)

	// n == 1: stay put.
	tour, err = tsp.Solve([][]float64{{0}})
	require.NoError(t, err)
	require.Equal(t, 0.0, tour.Cost)
	require.Equal(t, []int{0, 0}, tour.Order)
}

func TestSolve_PermutationFraming(t *testing.T) {
	// For every valid complete instance the order must be a permutation of
	// 0..n-1 framed by 0, and the cost must equal the plain edge sum along
	// the order — exact float equality, same summation direction.
	for n := 2; n <= 10; n++ {
		dist := randomDist(n, int64(100+n), n%2 == 0)
		tour, err := tsp.Solve(dist)
		require.NoError(t, err)

		require.Len(t, tour.Order, n+1)
		require.Equal(t, 0, tour.Order[0])
		require.Equal(t, 0, tour.Order[n])
		seen := make([]bool, n)
		for _, v := range tour.Order[:n] {
			require.False(t, seen[v], "vertex %d visited twice", v)
			seen[v] = true
		}

		sum := 0.0
		for i := 0; i < n; i++ {
			sum += dist[tour.Order[i]][tour.Order[i+1]]
		}
		require.Equal(t, sum, tour.Cost)
	}
}

func TestSolve_Idempotent(t *testing.T) {
	// Same matrix in, bit-identical Tour out — every time.
	dist := randomDist(9, 21, true)
	first, err := tsp.Solve(dist)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := tsp.Solve(dist)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSolve_DeterministicUnderTies(t *testing.T) {
	// Ring distances are riddled with ties (every reversal of an optimal
	// tour is optimal); the ascending-index tie-break must pick the same
	// order on every call.
	dist := makeCycleDist(7)
	first, err := tsp.Solve(dist)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := tsp.Solve(dist)
		require.NoError(t, err)
		require.Equal(t, first.Order, again.Order)
		require.Equal(t, first.Cost, again.Cost)
	}
}

func TestSolve_InputNotMutated(t *testing.T) {
	// The matrix is caller-owned; a solve call must leave it untouched.
	dist := randomDist(6, 5, false)
	snapshot := make([][]float64, len(dist))
	for i := range dist {
		snapshot[i] = append([]float64(nil), dist[i]...)
	}
	_, err := tsp.Solve(dist)
	require.NoError(t, err)
	require.Equal(t, snapshot, dist)
}

func TestSolve_ZeroDiagonalOption(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dist := randomDist(5, 3, true)
	dist[2][2] = 1 + rng.Float64() // stray self-loop cost from a sloppy provider

	_, err := tsp.Solve(dist)
	require.ErrorIs(t, err, tsp.ErrBadDiagonal)

	tour, err := tsp.SolveWithOptions(dist, tsp.Options{ZeroDiagonal: true})
	require.NoError(t, err)
	require.Equal(t, bruteForce(dist), tour.Cost)
}
