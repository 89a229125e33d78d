package catalog

import "testing"

func strPtr(s string) *string { return &s }

func TestResolveParams(t *testing.T) {
	tests := []struct {
		name string
		rows []ParamRow
		want Params
	}{
		{
			name: "empty store falls back to documented defaults",
			rows: nil,
			want: Params{
				BaseFare:          DefaultBaseFare,
				AirportFee:        DefaultAirportFee,
				RoundTripDiscount: DefaultRoundTripDiscount,
				MinimumFare:       DefaultMinimumFare,
				PerKmRate:         DefaultPerKmRate,
			},
		},
		{
			name: "stored values win over defaults",
			rows: []ParamRow{
				{Key: "base_fare", Value: 75},
				{Key: "minimum_fare", Value: 1500},
			},
			want: Params{
				BaseFare:          75,
				AirportFee:        DefaultAirportFee,
				RoundTripDiscount: DefaultRoundTripDiscount,
				MinimumFare:       1500,
				PerKmRate:         DefaultPerKmRate,
			},
		},
		{
			name: "vehicle-scoped rows never leak into globals",
			rows: []ParamRow{
				{Key: "minimum_fare", Value: 9999, VehicleType: strPtr("vito")},
			},
			want: Params{
				BaseFare:          DefaultBaseFare,
				AirportFee:        DefaultAirportFee,
				RoundTripDiscount: DefaultRoundTripDiscount,
				MinimumFare:       DefaultMinimumFare,
				PerKmRate:         DefaultPerKmRate,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveParams(tt.rows); got != tt.want {
				t.Errorf("ResolveParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRateVehicles(t *testing.T) {
	vehicles := []VehicleClass{
		{ID: 1, Type: "vito", CapacityMax: 7, Active: true},
		{ID: 2, Type: "sprinter", CapacityMax: 16, Active: true},
	}
	rows := []ParamRow{
		{Key: "base_fare", Value: 50},
		{Key: "airport_fee", Value: 150},
		{Key: "minimum_fare", Value: 1200},
		{Key: "per_km_rate_vito", Value: 30, VehicleType: strPtr("vito")},
		{Key: "minimum_fare_vito", Value: 900, VehicleType: strPtr("vito")},
	}

	rated := RateVehicles(vehicles, rows)
	if len(rated) != 2 {
		t.Fatalf("got %d rated vehicles, want 2", len(rated))
	}

	vito := rated[0]
	if vito.PerKmRate != 30 {
		t.Errorf("vito PerKmRate = %v, want per-class 30", vito.PerKmRate)
	}
	if vito.MinimumFare != 900 {
		t.Errorf("vito MinimumFare = %v, want per-class 900", vito.MinimumFare)
	}
	if vito.BaseFare != 50 || vito.AirportFee != 150 {
		t.Errorf("vito globals = base %v / airport %v, want 50 / 150", vito.BaseFare, vito.AirportFee)
	}

	// No per-class rate for the sprinter: global fallbacks apply.
	sprinter := rated[1]
	if sprinter.PerKmRate != DefaultPerKmRate {
		t.Errorf("sprinter PerKmRate = %v, want global default %v", sprinter.PerKmRate, DefaultPerKmRate)
	}
	if sprinter.MinimumFare != 1200 {
		t.Errorf("sprinter MinimumFare = %v, want global 1200", sprinter.MinimumFare)
	}
}

func TestRateVehiclesZeroClassMinimumInheritsGlobal(t *testing.T) {
	vehicles := []VehicleClass{{ID: 1, Type: "vito", CapacityMax: 7, Active: true}}
	rows := []ParamRow{
		{Key: "minimum_fare", Value: 1200},
		{Key: "minimum_fare_vito", Value: 0, VehicleType: strPtr("vito")},
	}
	rated := RateVehicles(vehicles, rows)
	if rated[0].MinimumFare != 1200 {
		t.Errorf("MinimumFare = %v, want global 1200 when the class floor is zero", rated[0].MinimumFare)
	}
}
