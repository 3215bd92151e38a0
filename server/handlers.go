package server

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/optiroute/optiroute/geo"
	"github.com/optiroute/optiroute/tsp"
)

// RouteRequest is the body of POST /v1/route.
type RouteRequest struct {
	Points []geo.Coordinate `json:"points" binding:"required"`
}

// Stop is one visit of the optimized itinerary. LegKm is the distance of
// the leg arriving at this stop; it is 0 for the first stop.
type Stop struct {
	Visit int     `json:"visit"`
	Node  int     `json:"node"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	LegKm float64 `json:"leg_km"`
}

// RouteResponse is the success body of POST /v1/route.
type RouteResponse struct {
	TotalKm   float64 `json:"total_km"`
	Order     []int   `json:"order"`
	Itinerary []Stop  `json:"itinerary"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Points) > s.maxPoints {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many points for exact optimization"})
		return
	}
	if err := geo.ValidateCoordinates(req.Points); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dist, err := s.provider.DistanceMatrix(c.Request.Context(), req.Points)
	if err != nil {
		s.log.Error("distance provider failed", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusBadGateway, gin.H{"error": "distance provider failed"})
		return
	}

	tour, err := tsp.Solve(dist)
	switch {
	case errors.Is(err, tsp.ErrNoTour):
		// Legitimate negative result: some locations have no connecting
		// road route. Distinct from malformed input on purpose.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "some locations are unreachable by road"})
		return
	case errors.Is(err, tsp.ErrMalformedMatrix):
		// The provider violated its matrix contract; nothing the client
		// can do about it.
		s.log.Error("provider returned malformed matrix", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	case err != nil:
		s.log.Error("solve failed", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, buildRouteResponse(req.Points, dist, tour))
}

// buildRouteResponse annotates the optimal order with coordinates and
// per-leg distances, mirroring the tour: stop i is reached by the leg
// order[i-1]→order[i]; the closing leg back to the start is included in
// TotalKm but not listed as a stop.
func buildRouteResponse(points []geo.Coordinate, dist [][]float64, tour tsp.Tour) RouteResponse {
	itinerary := make([]Stop, 0, len(tour.Order))
	for i, node := range tour.Order[:len(tour.Order)-1] {
		leg := 0.0
		if i > 0 {
			leg = dist[tour.Order[i-1]][node]
		}
		itinerary = append(itinerary, Stop{
			Visit: i + 1,
			Node:  node,
			Lat:   points[node].Lat,
			Lon:   points[node].Lon,
			LegKm: round3(leg),
		})
	}
	return RouteResponse{
		TotalKm:   round3(tour.Cost),
		Order:     tour.Order,
		Itinerary: itinerary,
	}
}

// round3 rounds to 3 decimals for display; the solver's exact cost is not
// affected, only the JSON presentation.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
