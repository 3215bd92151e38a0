package tsp_test

import (
	"fmt"

	"github.com/optiroute/optiroute/tsp"
)

// ExampleSolve solves the classic 4-city instance. The optimum visits
// 0→1→3→2 and returns home for a total of 80.
func ExampleSolve() {
	dist := [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}

	tour, err := tsp.Solve(dist)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("order:", tour.Order)
	fmt.Println("cost:", tour.Cost)
	// Output:
	// order: [0 1 3 2 0]
	// cost: 80
}
