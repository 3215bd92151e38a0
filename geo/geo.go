package geo

import (
	"context"
	"errors"
	"math"
)

// Point-count bounds for one route request. MaxPoints matches tsp.MaxNodes:
// beyond it the exact solver's state space is intractable anyway.
const (
	MinPoints = 2
	MaxPoints = 20
)

// Unreachable marks a pair with no viable route in a distance matrix.
// It is the same sentinel the tsp package understands as a missing edge.
var Unreachable = math.Inf(1)

var (
	// ErrBadCoordinate signals a latitude outside [-90,90] or a longitude
	// outside [-180,180], or a NaN in either.
	ErrBadCoordinate = errors.New("geo: latitude must be in [-90,90] and longitude in [-180,180]")

	// ErrTooFewPoints signals fewer than MinPoints coordinates.
	ErrTooFewPoints = errors.New("geo: at least 2 points are required")

	// ErrTooManyPoints signals more than MaxPoints coordinates.
	ErrTooManyPoints = errors.New("geo: too many points")
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ValidateCoordinates checks the point count bounds and the value range of
// every coordinate. Side-effect free; the slice is not modified.
func ValidateCoordinates(coords []Coordinate) error {
	if len(coords) < MinPoints {
		return ErrTooFewPoints
	}
	if len(coords) > MaxPoints {
		return ErrTooManyPoints
	}
	for _, c := range coords {
		if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
			return ErrBadCoordinate
		}
		if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
			return ErrBadCoordinate
		}
	}
	return nil
}

// MatrixProvider builds the pairwise travel-cost matrix consumed by
// tsp.Solve.
type MatrixProvider interface {
	// DistanceMatrix returns an n×n matrix of non-negative distances in
	// kilometres for the given coordinates: entry (i,j) is the cost of
	// travelling from point i to point j, the diagonal is zero, and
	// Unreachable marks pairs with no viable route.
	DistanceMatrix(ctx context.Context, coords []Coordinate) ([][]float64, error)
}
