package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/optiroute/optiroute/geo"
	"github.com/optiroute/optiroute/tsp"
)

func newSolveCmd() *cobra.Command {
	var (
		matrixPath string
		pointsPath string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Optimize a tour offline",
		Long: `Optimize a tour without the HTTP API.

With --matrix, the file holds an n×n JSON array of distances; null marks an
unreachable pair. With --points, the file holds a JSON array of
{"lat":..,"lon":..} objects and distances are great-circle kilometres.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (matrixPath == "") == (pointsPath == "") {
				return errors.New("exactly one of --matrix or --points is required")
			}

			var (
				dist [][]float64
				err  error
			)
			if matrixPath != "" {
				dist, err = readMatrixFile(matrixPath)
			} else {
				dist, err = readPointsMatrix(pointsPath)
			}
			if err != nil {
				return err
			}

			tour, err := tsp.Solve(dist)
			if errors.Is(err, tsp.ErrNoTour) {
				return errors.New("no feasible tour: some stops are unreachable from each other")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "order: %v\ntotal: %.3f\n", tour.Order, tour.Cost)
			return nil
		},
	}

	cmd.Flags().StringVar(&matrixPath, "matrix", "", "JSON file with an n×n distance matrix (null = unreachable)")
	cmd.Flags().StringVar(&pointsPath, "points", "", "JSON file with a list of {lat,lon} points")

	return cmd
}

// readMatrixFile decodes an n×n JSON array; null entries become the
// unreachable sentinel.
func readMatrixFile(path string) ([][]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	var rows [][]*float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse matrix: %w", err)
	}
	dist := make([][]float64, len(rows))
	for i, row := range rows {
		dist[i] = make([]float64, len(row))
		for j, cell := range row {
			if cell == nil {
				dist[i][j] = math.Inf(1)
				continue
			}
			dist[i][j] = *cell
		}
	}
	return dist, nil
}

// readPointsMatrix decodes a coordinate list and builds the great-circle
// distance matrix.
func readPointsMatrix(path string) ([][]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	var coords []geo.Coordinate
	if err := json.Unmarshal(raw, &coords); err != nil {
		return nil, fmt.Errorf("parse points: %w", err)
	}
	return geo.Haversine{}.DistanceMatrix(context.Background(), coords)
}
