// README: Vehicle catalog accessor; resolves per-class and global parameter precedence.
package catalog

import (
	"context"
	"strings"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ActiveVehicles returns the active vehicle classes with their pricing
// parameters resolved, in catalog (id) order.
func (s *Service) ActiveVehicles(ctx context.Context) ([]RatedVehicle, error) {
	vehicles, err := s.store.ActiveVehicles(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ParamRows(ctx)
	if err != nil {
		return nil, err
	}
	return RateVehicles(vehicles, rows), nil
}

// Params returns the resolved global pricing parameters.
func (s *Service) Params(ctx context.Context) (Params, error) {
	rows, err := s.store.ParamRows(ctx)
	if err != nil {
		return Params{}, err
	}
	return ResolveParams(rows), nil
}

// ResolveParams folds the raw config rows into the global parameter set,
// substituting documented defaults for anything absent.
func ResolveParams(rows []ParamRow) Params {
	p := Params{
		BaseFare:          DefaultBaseFare,
		AirportFee:        DefaultAirportFee,
		RoundTripDiscount: DefaultRoundTripDiscount,
		MinimumFare:       DefaultMinimumFare,
		PerKmRate:         DefaultPerKmRate,
	}
	for _, row := range rows {
		if row.VehicleType != nil {
			continue
		}
		switch row.Key {
		case "base_fare":
			p.BaseFare = row.Value
		case "airport_fee":
			p.AirportFee = row.Value
		case "round_trip_discount":
			p.RoundTripDiscount = row.Value
		case "minimum_fare":
			p.MinimumFare = row.Value
		case "per_km_rate":
			p.PerKmRate = row.Value
		}
	}
	return p
}

// RateVehicles attaches resolved pricing parameters to each vehicle class.
// Per-class per-km rate and minimum fare win over globals; a per-class
// minimum of zero inherits the global floor.
func RateVehicles(vehicles []VehicleClass, rows []ParamRow) []RatedVehicle {
	globals := ResolveParams(rows)

	rated := make([]RatedVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		rv := RatedVehicle{
			VehicleClass: v,
			PerKmRate:    globals.PerKmRate,
			BaseFare:     globals.BaseFare,
			AirportFee:   globals.AirportFee,
			MinimumFare:  globals.MinimumFare,
		}
		for _, row := range rows {
			if row.VehicleType == nil || *row.VehicleType != v.Type {
				continue
			}
			switch {
			case strings.HasPrefix(row.Key, "per_km_rate"):
				rv.PerKmRate = row.Value
			case strings.HasPrefix(row.Key, "minimum_fare") && row.Value > 0:
				rv.MinimumFare = row.Value
			}
		}
		rated = append(rated, rv)
	}
	return rated
}
