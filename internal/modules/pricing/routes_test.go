package pricing

import (
	"reflect"
	"testing"
)

func sampleRoutes() []FixedRoute {
	return []FixedRoute{
		{ID: 1, Origin: "istanbul airport", Destination: "sultanahmet", VehicleType: "luxury_sedan", Price: 2000},
		{ID: 2, Origin: "istanbul airport", Destination: "sultanahmet", VehicleType: "vito", Price: 2086},
		{ID: 3, Origin: "istanbul airport", Destination: "sultanahmet", VehicleType: "sprinter", Price: 2898},
		{ID: 4, Origin: "istanbul airport", Destination: "taksim", VehicleType: "luxury_sedan", Price: 1830},
		{ID: 5, Origin: "sabiha gokcen airport", Destination: "kadıköy", VehicleType: "vito", Price: 2400},
	}
}

func TestResolveFixedRoute(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		want        map[string]float64
	}{
		{
			name:        "exact pair",
			origin:      "istanbul airport",
			destination: "sultanahmet",
			want:        map[string]float64{"luxury_sedan": 2000, "vito": 2086, "sprinter": 2898},
		},
		{
			name:        "reversed direction",
			origin:      "Sultanahmet",
			destination: "Istanbul Airport",
			want:        map[string]float64{"luxury_sedan": 2000, "vito": 2086, "sprinter": 2898},
		},
		{
			name:        "containment with data-entry variance",
			origin:      "İstanbul Airport Terminal 2",
			destination: "Sultanahmet (Fatih)",
			want:        map[string]float64{"luxury_sedan": 2000, "vito": 2086, "sprinter": 2898},
		},
		{
			name:        "diacritics on the request side",
			origin:      "Sabiha Gökçen Airport (SAW)",
			destination: "Kadıköy İskele",
			want:        map[string]float64{"vito": 2400},
		},
		{
			name:        "no match",
			origin:      "ankara",
			destination: "izmir",
			want:        nil,
		},
		{
			name:        "partial name does not match the stored pair",
			origin:      "istanbul airport",
			destination: "besiktas",
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFixedRoute(sampleRoutes(), tt.origin, tt.destination)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveFixedRoute(%q, %q) = %v, want %v", tt.origin, tt.destination, got, tt.want)
			}
		})
	}
}

func TestResolveFixedRouteDiscount(t *testing.T) {
	routes := []FixedRoute{
		{ID: 1, Origin: "istanbul airport", Destination: "taksim", VehicleType: "vito", Price: 2000, DiscountPercent: 10},
	}
	got := ResolveFixedRoute(routes, "Istanbul Airport", "Taksim")
	if got["vito"] != 1800 { // 2000 * (1 - 10/100)
		t.Errorf("discounted price = %v, want 1800", got["vito"])
	}
}

func TestResolveFixedRouteDuplicateRows(t *testing.T) {
	// The table is declared unique on (origin, destination, vehicle) but
	// upstream entry mistakes happen. The lowest id must win, every time.
	routes := []FixedRoute{
		{ID: 7, Origin: "istanbul airport", Destination: "taksim", VehicleType: "vito", Price: 1915},
		{ID: 9, Origin: "istanbul airport", Destination: "taksim", VehicleType: "vito", Price: 2500},
	}
	for i := 0; i < 5; i++ {
		got := ResolveFixedRoute(routes, "istanbul airport", "taksim")
		if got["vito"] != 1915 {
			t.Fatalf("iteration %d: duplicate resolution = %v, want 1915", i, got["vito"])
		}
	}
}

func TestResolveFixedRouteFirstPairWins(t *testing.T) {
	// Two stored pairs can both satisfy one request via containment; the
	// first pair in id order is the one that answers.
	routes := []FixedRoute{
		{ID: 1, Origin: "istanbul airport", Destination: "sultanahmet", VehicleType: "vito", Price: 2086},
		{ID: 2, Origin: "istanbul", Destination: "sultanahmet", VehicleType: "vito", Price: 999},
	}
	got := ResolveFixedRoute(routes, "istanbul airport", "sultanahmet fatih")
	if got["vito"] != 2086 {
		t.Errorf("first-pair price = %v, want 2086", got["vito"])
	}
}

func TestResolveFixedRouteIgnoresNonPositivePrices(t *testing.T) {
	routes := []FixedRoute{
		{ID: 1, Origin: "istanbul airport", Destination: "taksim", VehicleType: "vito", Price: 0},
	}
	if got := ResolveFixedRoute(routes, "istanbul airport", "taksim"); got != nil {
		t.Errorf("zero-price route resolved to %v, want nil", got)
	}
}

func TestGroupFixedRoutes(t *testing.T) {
	groups := GroupFixedRoutes(sampleRoutes())
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Origin != "istanbul airport" || groups[0].Destination != "sultanahmet" {
		t.Errorf("first group = %s -> %s, want istanbul airport -> sultanahmet", groups[0].Origin, groups[0].Destination)
	}
	if len(groups[0].Prices) != 3 {
		t.Errorf("first group has %d prices, want 3", len(groups[0].Prices))
	}
	if groups[2].Prices["vito"] != 2400 {
		t.Errorf("kadıköy vito price = %v, want 2400", groups[2].Prices["vito"])
	}
}
