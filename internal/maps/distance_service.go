package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"

	"shuttleport/internal/types"
)

// ErrNoRoute is returned when the Distance Matrix API finds no drivable route
// between the two points.
var ErrNoRoute = errors.New("no route found")

// DistanceResult is the trip geometry the quote engine consumes.
type DistanceResult struct {
	DistanceKm         float64 `json:"distance_km"`
	DistanceText       string  `json:"distance_text"`
	DurationMin        int     `json:"duration_minutes"`
	DurationText       string  `json:"duration_text"`
	OriginAddress      string  `json:"origin_address"`
	DestinationAddress string  `json:"destination_address"`
}

// DistanceService fronts the Google Distance Matrix API. Results are cached
// in Redis keyed by rounded coordinates, since the same airport/hotel pairs
// get quoted over and over.
type DistanceService struct {
	client *maps.Client
	cache  *redis.Client
	ttl    time.Duration
}

// NewDistanceService creates a DistanceService with the given API key. The
// cache client may be nil, in which case every call hits the API.
func NewDistanceService(apiKey string, cache *redis.Client, ttl time.Duration) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client, cache: cache, ttl: ttl}, nil
}

// Estimate returns driving distance and duration between two points.
func (s *DistanceService) Estimate(ctx context.Context, origin, destination types.Point) (DistanceResult, error) {
	key := distanceCacheKey(origin, destination)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var res DistanceResult
			if err := json.Unmarshal([]byte(cached), &res); err == nil {
				return res, nil
			}
		}
	}

	r := &maps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%f,%f", origin.Lat, origin.Lng)},
		Destinations: []string{fmt.Sprintf("%f,%f", destination.Lat, destination.Lng)},
		Mode:         maps.TravelModeDriving,
		Language:     "tr",
	}
	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return DistanceResult{}, ErrNoRoute
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return DistanceResult{}, fmt.Errorf("%w: %s", ErrNoRoute, element.Status)
	}

	res := DistanceResult{
		DistanceKm:   math.Round(float64(element.Distance.Meters)/1000*10) / 10,
		DistanceText: element.Distance.HumanReadable,
		DurationMin:  int(math.Round(element.Duration.Minutes())),
		DurationText: formatDuration(element.Duration),
	}
	if len(resp.OriginAddresses) > 0 {
		res.OriginAddress = resp.OriginAddresses[0]
	}
	if len(resp.DestinationAddresses) > 0 {
		res.DestinationAddress = resp.DestinationAddresses[0]
	}

	if s.cache != nil {
		if payload, err := json.Marshal(res); err == nil {
			_ = s.cache.Set(ctx, key, payload, s.ttl).Err()
		}
	}
	return res, nil
}

// distanceCacheKey rounds coordinates to ~10 m so trivially different GPS
// fixes for the same pickup share a cache entry.
func distanceCacheKey(origin, destination types.Point) string {
	return fmt.Sprintf("maps:dist:%.4f,%.4f:%.4f,%.4f",
		origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}

func formatDuration(d time.Duration) string {
	minutes := int(math.Round(d.Minutes()))
	if minutes < 60 {
		return fmt.Sprintf("%d dk", minutes)
	}
	return fmt.Sprintf("%d sa %d dk", minutes/60, minutes%60)
}
