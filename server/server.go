// Package server exposes route optimization over HTTP: it accepts a list of
// coordinates, builds the pairwise distance matrix through a
// geo.MatrixProvider, solves the tour exactly with tsp.Solve, and returns an
// itinerary annotated with per-leg distances.
//
// Error mapping keeps the solver's two failure classes distinguishable to
// clients: provider failures are 502, a matrix the solver rejects as
// malformed is 500 (the provider broke its contract), and an infeasible
// instance — locations with no connecting roads — is 422, a legitimate
// negative result the client may fix by adjusting inputs.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/optiroute/optiroute/geo"
)

// Server holds the dependencies of the HTTP API.
type Server struct {
	provider  geo.MatrixProvider
	log       *slog.Logger
	maxPoints int
}

// New builds a Server. A nil logger falls back to slog.Default; maxPoints
// outside (0, geo.MaxPoints] is clamped to geo.MaxPoints.
func New(provider geo.MatrixProvider, log *slog.Logger, maxPoints int) *Server {
	if log == nil {
		log = slog.Default()
	}
	if maxPoints <= 0 || maxPoints > geo.MaxPoints {
		maxPoints = geo.MaxPoints
	}
	return &Server{provider: provider, log: log, maxPoints: maxPoints}
}

// Router assembles the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	router.GET("/health", s.handleHealth)

	v1 := router.Group("/v1")
	{
		v1.POST("/route", s.handleRoute)
	}

	return router
}

// requestID tags every request with an X-Request-ID (propagated from the
// client when present) so log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
