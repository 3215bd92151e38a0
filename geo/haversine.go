package geo

import (
	"context"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0088

// Haversine is an offline MatrixProvider: great-circle distances in
// kilometres. Every pair is reachable and the matrix is symmetric. Useful
// for solving without an API key and as a test double with realistic
// geometry.
type Haversine struct{}

// DistanceMatrix implements MatrixProvider.
func (Haversine) DistanceMatrix(_ context.Context, coords []Coordinate) ([][]float64, error) {
	if err := ValidateCoordinates(coords); err != nil {
		return nil, err
	}
	n := len(coords)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := haversineKm(coords[i], coords[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}
	return dist, nil
}

// haversineKm returns the great-circle distance between two WGS84 points.
func haversineKm(a, b Coordinate) float64 {
	var (
		lat1 = a.Lat * math.Pi / 180
		lat2 = b.Lat * math.Pi / 180
		dLat = (b.Lat - a.Lat) * math.Pi / 180
		dLon = (b.Lon - a.Lon) * math.Pi / 180
	)
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
