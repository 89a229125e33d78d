// README: Quote assembler: capacity filter, fixed/dynamic pricing per class, price-ordered result.
package pricing

import (
	"context"
	"sort"

	"shuttleport/internal/modules/catalog"
)

type Service struct {
	catalog *catalog.Service
	store   *Store
}

func NewService(cat *catalog.Service, store *Store) *Service {
	return &Service{catalog: cat, store: store}
}

// ComputeQuotes loads a fresh snapshot and prices the trip for every eligible
// vehicle class.
func (s *Service) ComputeQuotes(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeQuotes(snap, req)
}

// ListFixedRoutes returns the grouped fixed-route price table, a reporting
// view over the same data the resolver matches against.
func (s *Service) ListFixedRoutes(ctx context.Context) ([]RouteGroup, error) {
	routes, err := s.store.ActiveRoutes(ctx)
	if err != nil {
		return nil, err
	}
	return GroupFixedRoutes(routes), nil
}

func (s *Service) snapshot(ctx context.Context) (Snapshot, error) {
	vehicles, err := s.catalog.ActiveVehicles(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	params, err := s.catalog.Params(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	routes, err := s.store.ActiveRoutes(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Vehicles: vehicles, Routes: routes, Params: params}, nil
}

// ComputeQuotes is the pure engine entry point. It reads only the snapshot,
// so concurrent requests can share nothing and still race nowhere.
func ComputeQuotes(snap Snapshot, req QuoteRequest) (*QuoteResult, error) {
	fixed := ResolveFixedRoute(snap.Routes, req.Origin, req.Destination)

	var quotes []QuoteLine
	for _, v := range snap.Vehicles {
		if req.PassengerCount > v.CapacityMax {
			continue
		}
		var fixedPrice *float64
		if price, ok := fixed[v.Type]; ok {
			fixedPrice = &price
		}
		quotes = append(quotes, CalculateFare(v, snap.Params, req, fixedPrice))
	}
	if len(quotes) == 0 {
		return nil, ErrNoVehicleAvailable
	}

	// Stable sort keeps catalog order as the tie-break for equal prices.
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].FinalPrice < quotes[j].FinalPrice
	})

	return &QuoteResult{
		Route: RouteInfo{
			Origin:          req.Origin,
			Destination:     req.Destination,
			DistanceKm:      req.DistanceKm,
			DurationMin:     req.DurationMin,
			RoundTrip:       req.RoundTrip,
			AirportTransfer: req.AirportTransfer,
			FixedRoute:      fixed != nil,
		},
		Quotes: quotes,
	}, nil
}
