// Package geo supplies the distance-matrix side of route optimization:
// coordinate types and validation, the MatrixProvider boundary consumed by
// the solver's callers, and two concrete providers.
//
//   - RoutesClient queries the Google Routes API
//     (distanceMatrix/v2:computeRouteMatrix) and converts driving distances
//     into an n×n kilometre matrix, with Unreachable marking pairs that
//     have no viable road route.
//
//   - Haversine computes great-circle distances locally — no API key, no
//     network — for offline solving and tests.
//
// Every provider honours the same contract: given n coordinates, return an
// n×n matrix of non-negative kilometre distances with a zero diagonal and
// Unreachable for missing routes. That is exactly the input contract of
// tsp.Solve.
package geo
