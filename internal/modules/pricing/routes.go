// README: Fixed-route records, bidirectional matching, and the grouped route report.
package pricing

import (
	"log"
	"strings"
)

// FixedRoute is one pre-negotiated flat price for an (origin, destination,
// vehicle class) triple. The table is declared unique on that triple but
// upstream data entry can still produce duplicates, so the matching code
// treats rows as an ordered list and keeps the lowest id per triple.
type FixedRoute struct {
	ID              int64
	Origin          string
	Destination     string
	VehicleType     string
	Price           float64
	DiscountPercent float64
	CompetitorPrice *float64
	Notes           string
}

// routePair identifies a route group by its exact stored names.
type routePair struct {
	origin      string
	destination string
}

// matchesPair reports whether a stored pair satisfies the requested trip in
// either direction. Matching is normalized containment, not equality: a route
// stored as "istanbul airport" matches a request for "İstanbul Havalimanı
// Airport Terminal". This tolerance for data-entry variance is deliberate.
func matchesPair(pair routePair, normOrigin, normDest string) bool {
	po := NormalizeLocation(pair.origin)
	pd := NormalizeLocation(pair.destination)
	if strings.Contains(normOrigin, po) && strings.Contains(normDest, pd) {
		return true
	}
	// Reverse direction: a route defined A→B also covers B→A.
	return strings.Contains(normOrigin, pd) && strings.Contains(normDest, po)
}

// ResolveFixedRoute scans the active routes for a pair matching the requested
// origin/destination and returns the per-vehicle-class discounted prices of
// the first matching pair, or nil when no pair matches. Routes must be in id
// order; the first row wins when duplicates exist for the same triple, and
// the ambiguity is logged rather than surfaced as an error.
func ResolveFixedRoute(routes []FixedRoute, origin, destination string) map[string]float64 {
	normOrigin := NormalizeLocation(origin)
	normDest := NormalizeLocation(destination)

	seen := make(map[routePair]bool)
	var matched *routePair
	for _, r := range routes {
		pair := routePair{r.Origin, r.Destination}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		if matchesPair(pair, normOrigin, normDest) {
			matched = &pair
			break
		}
	}
	if matched == nil {
		return nil
	}

	prices := collectPairPrices(routes, *matched)
	if len(prices) == 0 {
		return nil
	}
	return prices
}

// collectPairPrices gathers the discounted price per vehicle class for all
// rows sharing the exact stored pair. Non-positive prices are treated as
// "no fixed price for that class".
func collectPairPrices(routes []FixedRoute, pair routePair) map[string]float64 {
	prices := make(map[string]float64)
	for _, r := range routes {
		if r.Origin != pair.origin || r.Destination != pair.destination {
			continue
		}
		if r.Price <= 0 {
			continue
		}
		if _, exists := prices[r.VehicleType]; exists {
			log.Printf("pricing: duplicate fixed route %s -> %s for %s (id=%d ignored)",
				r.Origin, r.Destination, r.VehicleType, r.ID)
			continue
		}
		prices[r.VehicleType] = discountedPrice(r)
	}
	return prices
}

func discountedPrice(r FixedRoute) float64 {
	if r.DiscountPercent > 0 {
		return r.Price * (1 - r.DiscountPercent/100)
	}
	return r.Price
}

// RouteGroup is one entry of the fixed-route report: a stored pair with the
// discounted price of every vehicle class sold on it.
type RouteGroup struct {
	Origin      string
	Destination string
	Prices      map[string]float64
}

// GroupFixedRoutes builds the reporting view over all active routes, grouped
// by exact stored pair in first-seen (id) order.
func GroupFixedRoutes(routes []FixedRoute) []RouteGroup {
	var order []routePair
	seen := make(map[routePair]bool)
	for _, r := range routes {
		pair := routePair{r.Origin, r.Destination}
		if !seen[pair] {
			seen[pair] = true
			order = append(order, pair)
		}
	}

	groups := make([]RouteGroup, 0, len(order))
	for _, pair := range order {
		groups = append(groups, RouteGroup{
			Origin:      pair.origin,
			Destination: pair.destination,
			Prices:      collectPairPrices(routes, pair),
		})
	}
	return groups
}
