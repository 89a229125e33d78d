// README: Synthetic snapshot and request permutations for the engine benchmark.
package main

import (
	"fmt"

	"shuttleport/internal/modules/catalog"
	"shuttleport/internal/modules/pricing"
)

func buildSnapshot() pricing.Snapshot {
	vito := "vito"
	sprinter := "sprinter"
	sedan := "luxury_sedan"
	rows := []catalog.ParamRow{
		{Key: "base_fare", Value: 50},
		{Key: "airport_fee", Value: 150},
		{Key: "round_trip_discount", Value: 10},
		{Key: "minimum_fare", Value: 1200},
		{Key: "per_km_rate_vito", Value: 25, VehicleType: &vito},
		{Key: "per_km_rate_sprinter", Value: 35, VehicleType: &sprinter},
		{Key: "per_km_rate_luxury_sedan", Value: 40, VehicleType: &sedan},
	}
	vehicles := []catalog.VehicleClass{
		{ID: 1, Type: "vito", NameEN: "Mercedes Vito", NameTR: "Mercedes Vito", CapacityMin: 1, CapacityMax: 7, BaggageCapacity: 5, Active: true},
		{ID: 2, Type: "sprinter", NameEN: "Mercedes Sprinter", NameTR: "Mercedes Sprinter", CapacityMin: 1, CapacityMax: 16, BaggageCapacity: 15, Active: true},
		{ID: 3, Type: "luxury_sedan", NameEN: "Luxury Sedan", NameTR: "Lüks Sedan", CapacityMin: 1, CapacityMax: 3, BaggageCapacity: 3, Active: true},
	}
	routes := []pricing.FixedRoute{
		{ID: 1, Origin: "istanbul airport", Destination: "sultanahmet", VehicleType: "luxury_sedan", Price: 2000},
		{ID: 2, Origin: "istanbul airport", Destination: "sultanahmet", VehicleType: "vito", Price: 2086},
		{ID: 3, Origin: "istanbul airport", Destination: "sultanahmet", VehicleType: "sprinter", Price: 2898},
		{ID: 4, Origin: "istanbul airport", Destination: "taksim", VehicleType: "luxury_sedan", Price: 1830},
		{ID: 5, Origin: "istanbul airport", Destination: "taksim", VehicleType: "vito", Price: 1915},
	}
	return pricing.Snapshot{
		Vehicles: catalog.RateVehicles(vehicles, rows),
		Routes:   routes,
		Params:   catalog.ResolveParams(rows),
	}
}

func buildRequests() []pricing.QuoteRequest {
	origins := []string{"İstanbul Havalimanı (IST)", "Sultanahmet", "Kadıköy", "Beşiktaş"}
	destinations := []string{"Sultanahmet (Fatih)", "Taksim (Beyoğlu)", "İstanbul Airport", "Üsküdar"}
	distances := []float64{12.5, 25, 48.3, 71}

	var reqs []pricing.QuoteRequest
	for _, o := range origins {
		for _, d := range destinations {
			for _, km := range distances {
				for _, roundTrip := range []bool{false, true} {
					reqs = append(reqs, pricing.QuoteRequest{
						Origin:          o,
						Destination:     d,
						DistanceKm:      km,
						DurationMin:     int(km * 1.5),
						PassengerCount:  2,
						RoundTrip:       roundTrip,
						AirportTransfer: true,
					})
				}
			}
		}
	}
	return reqs
}

// runCase computes one quote and checks the engine invariants that must hold
// for any input: ordered results and the minimum-fare floor.
func runCase(snap pricing.Snapshot, req pricing.QuoteRequest) error {
	result, err := pricing.ComputeQuotes(snap, req)
	if err != nil {
		return err
	}
	for i, q := range result.Quotes {
		if i > 0 && q.FinalPrice < result.Quotes[i-1].FinalPrice {
			return fmt.Errorf("quotes out of order at %d", i)
		}
		if !q.FixedRoute && q.FinalPrice < snap.Params.MinimumFare && !q.MinimumApplied {
			return fmt.Errorf("fare below floor without marker: %s", q.VehicleType)
		}
	}
	return nil
}
