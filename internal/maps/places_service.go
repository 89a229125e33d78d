package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"shuttleport/internal/types"
)

// Place represents a simplified location result.
type Place struct {
	PlaceID  string      `json:"place_id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Location types.Point `json:"location"`
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Search runs a text search for the query. When near is set, results close to
// that point are preferred within a 50 km radius. At most ten places are
// returned.
func (s *PlacesService) Search(ctx context.Context, query string, near *types.Point) ([]Place, error) {
	r := &maps.TextSearchRequest{
		Query:    query,
		Language: "tr",
	}
	if near != nil {
		r.Location = &maps.LatLng{Lat: near.Lat, Lng: near.Lng}
		r.Radius = 50000
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		results = append(results, Place{
			PlaceID: result.PlaceID,
			Name:    result.Name,
			Address: result.FormattedAddress,
			Location: types.Point{
				Lat: result.Geometry.Location.Lat,
				Lng: result.Geometry.Location.Lng,
			},
		})
		if len(results) >= 10 {
			break
		}
	}
	return results, nil
}
