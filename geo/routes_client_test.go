package geo_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optiroute/optiroute/geo"
)

var testCoords = []geo.Coordinate{
	{Lat: 52.52, Lon: 13.405},
	{Lat: 48.8566, Lon: 2.3522},
	{Lat: 50.0755, Lon: 14.4378},
}

func TestRoutesClient_DistanceMatrix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		require.Equal(t, "originIndex,destinationIndex,distanceMeters", r.Header.Get("X-Goog-FieldMask"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Origins      []json.RawMessage `json:"origins"`
			Destinations []json.RawMessage `json:"destinations"`
			TravelMode   string            `json:"travelMode"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Origins, 3)
		require.Len(t, req.Destinations, 3)
		require.Equal(t, "DRIVE", req.TravelMode)

		// 3×3 answer: pair (0,2) has no route (no distanceMeters field).
		elements := []map[string]any{}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				el := map[string]any{"originIndex": i, "destinationIndex": j}
				switch {
				case i == j:
					el["distanceMeters"] = int64(0)
				case i == 0 && j == 2:
					// route missing: field omitted
				default:
					el["distanceMeters"] = int64((i + j) * 1000)
				}
				elements = append(elements, el)
			}
		}
		require.NoError(t, json.NewEncoder(w).Encode(elements))
	}))
	defer srv.Close()

	rc, err := geo.NewRoutesClient("test-key", geo.WithEndpoint(srv.URL), geo.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	dist, err := rc.DistanceMatrix(context.Background(), testCoords)
	require.NoError(t, err)
	require.Len(t, dist, 3)

	require.Equal(t, 1.0, dist[0][1]) // 1000 m → 1 km
	require.Equal(t, 3.0, dist[1][2])
	require.True(t, math.IsInf(dist[0][2], 1), "missing route must stay Unreachable")
	for i := 0; i < 3; i++ {
		require.Equal(t, 0.0, dist[i][i])
	}
}

func TestRoutesClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	rc, err := geo.NewRoutesClient("test-key", geo.WithEndpoint(srv.URL), geo.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = rc.DistanceMatrix(context.Background(), testCoords)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestRoutesClient_BadElementIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		elements := []map[string]any{
			{"originIndex": 7, "destinationIndex": 0, "distanceMeters": int64(5)},
		}
		require.NoError(t, json.NewEncoder(w).Encode(elements))
	}))
	defer srv.Close()

	rc, err := geo.NewRoutesClient("test-key", geo.WithEndpoint(srv.URL), geo.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = rc.DistanceMatrix(context.Background(), testCoords)
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestRoutesClient_RequiresKey(t *testing.T) {
	_, err := geo.NewRoutesClient("")
	require.Error(t, err)
}

func TestRoutesClient_ValidatesInput(t *testing.T) {
	rc, err := geo.NewRoutesClient("test-key")
	require.NoError(t, err)
	_, err = rc.DistanceMatrix(context.Background(), testCoords[:1])
	require.ErrorIs(t, err, geo.ErrTooFewPoints)
}
