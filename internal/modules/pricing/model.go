// README: Quote request/response models and engine parameter snapshot.
package pricing

import (
	"errors"

	"shuttleport/internal/modules/catalog"
	"shuttleport/internal/types"
)

var (
	// ErrNoVehicleAvailable is returned when no active vehicle class can carry
	// the requested passenger count.
	ErrNoVehicleAvailable = errors.New("no vehicle available for passenger count")
)

// Currency is the quoting currency. Conversion to other currencies happens
// outside the engine.
const Currency = "TRY"

// QuoteRequest describes one trip to be priced. Distance and duration are
// supplied by the caller (typically from the maps collaborator); the engine
// never computes them from the coordinates.
type QuoteRequest struct {
	Origin           string
	Destination      string
	OriginPoint      types.Point
	DestinationPoint types.Point
	DistanceKm       float64
	DurationMin      int
	PassengerCount   int
	RoundTrip        bool
	AirportTransfer  bool
}

// QuoteLine is one vehicle class's computed price breakdown. Only FinalPrice
// is rounded; the intermediate fields carry full precision.
type QuoteLine struct {
	VehicleType    string
	VehicleName    string
	VehicleNameTR  string
	Capacity       int
	BaseFare       float64
	DistanceCharge float64
	AirportFee     float64
	Subtotal       float64
	Discount       float64
	FinalPrice     float64
	Currency       string
	FixedRoute     bool
	MinimumApplied bool
}

// RouteInfo echoes the request alongside whether a fixed route matched.
type RouteInfo struct {
	Origin          string
	Destination     string
	DistanceKm      float64
	DurationMin     int
	RoundTrip       bool
	AirportTransfer bool
	FixedRoute      bool
}

// QuoteResult is the full engine output: route metadata plus quote lines
// sorted ascending by final price.
type QuoteResult struct {
	Route  RouteInfo
	Quotes []QuoteLine
}

// Snapshot is the immutable per-request view of the data store the pure
// engine functions operate on. Building one snapshot per request keeps the
// computation free of shared state.
type Snapshot struct {
	Vehicles []catalog.RatedVehicle
	Routes   []FixedRoute
	Params   catalog.Params
}
