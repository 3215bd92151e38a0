package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Google Routes API, the successor of the legacy Distance Matrix API.
const (
	routesEndpoint  = "https://routes.googleapis.com/distanceMatrix/v2:computeRouteMatrix"
	routesFieldMask = "originIndex,destinationIndex,distanceMeters"
)

// HTTPClient is the subset of *http.Client used by RoutesClient. Injecting
// it keeps the client testable without a network.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RoutesClient implements MatrixProvider on top of the Google Routes API.
// A zero value is not usable; construct it with NewRoutesClient.
type RoutesClient struct {
	apiKey   string
	endpoint string
	client   HTTPClient
}

// RoutesOption customizes a RoutesClient.
type RoutesOption func(*RoutesClient)

// WithHTTPClient replaces the default http.DefaultClient.
func WithHTTPClient(c HTTPClient) RoutesOption {
	return func(rc *RoutesClient) { rc.client = c }
}

// WithEndpoint replaces the production endpoint (tests point it at a local
// httptest server).
func WithEndpoint(url string) RoutesOption {
	return func(rc *RoutesClient) { rc.endpoint = url }
}

// NewRoutesClient builds a client for the given API key.
func NewRoutesClient(apiKey string, opts ...RoutesOption) (*RoutesClient, error) {
	if apiKey == "" {
		return nil, errors.New("geo: routes api key is empty")
	}
	rc := &RoutesClient{
		apiKey:   apiKey,
		endpoint: routesEndpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc, nil
}

// Wire shapes of computeRouteMatrix. Origins and destinations share the
// waypoint encoding; for a full pairwise matrix they are the same list.
type (
	routesLatLng struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	routesLocation struct {
		LatLng routesLatLng `json:"latLng"`
	}
	routesWaypoint struct {
		Location routesLocation `json:"location"`
	}
	routesOrigin struct {
		Waypoint routesWaypoint `json:"waypoint"`
	}
	routesMatrixRequest struct {
		Origins      []routesOrigin `json:"origins"`
		Destinations []routesOrigin `json:"destinations"`
		TravelMode   string         `json:"travelMode"`
	}
	// routesMatrixElement is one cell of the response stream. A missing
	// distanceMeters means the pair has no viable route.
	routesMatrixElement struct {
		OriginIndex      int    `json:"originIndex"`
		DestinationIndex int    `json:"destinationIndex"`
		DistanceMeters   *int64 `json:"distanceMeters"`
	}
)

// DistanceMatrix requests the full origin×destination driving matrix for
// coords and converts it to kilometres.
//
// Contract (MatrixProvider): n×n, non-negative km, zero diagonal,
// Unreachable for pairs the API reports no route for.
func (rc *RoutesClient) DistanceMatrix(ctx context.Context, coords []Coordinate) ([][]float64, error) {
	if err := ValidateCoordinates(coords); err != nil {
		return nil, err
	}

	body, err := json.Marshal(buildMatrixRequest(coords))
	if err != nil {
		return nil, fmt.Errorf("geo: encode route matrix request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rc.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("geo: build route matrix request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", rc.apiKey)
	req.Header.Set("X-Goog-FieldMask", routesFieldMask)

	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo: route matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geo: route matrix request returned %d: %s", resp.StatusCode, msg)
	}

	var elements []routesMatrixElement
	if err = json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("geo: decode route matrix response: %w", err)
	}

	// Start fully unreachable; every answered cell overwrites its entry.
	n := len(coords)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = Unreachable
		}
	}
	for _, el := range elements {
		if el.OriginIndex < 0 || el.OriginIndex >= n ||
			el.DestinationIndex < 0 || el.DestinationIndex >= n {
			return nil, fmt.Errorf("geo: route matrix element out of range: (%d,%d)",
				el.OriginIndex, el.DestinationIndex)
		}
		if el.DistanceMeters != nil {
			dist[el.OriginIndex][el.DestinationIndex] = float64(*el.DistanceMeters) / 1000.0
		}
	}

	// The API occasionally omits or pads self-pairs; the solver requires a
	// zero diagonal either way.
	for i := 0; i < n; i++ {
		dist[i][i] = 0
	}

	return dist, nil
}

func buildMatrixRequest(coords []Coordinate) routesMatrixRequest {
	origins := make([]routesOrigin, len(coords))
	for i, c := range coords {
		origins[i] = routesOrigin{
			Waypoint: routesWaypoint{
				Location: routesLocation{
					LatLng: routesLatLng{Latitude: c.Lat, Longitude: c.Lon},
				},
			},
		}
	}
	return routesMatrixRequest{
		Origins:      origins,
		Destinations: origins, // full pairwise matrix
		TravelMode:   "DRIVE",
	}
}
