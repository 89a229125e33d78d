// README: Vehicle class records and resolved pricing parameters.
package catalog

// Parameter defaults applied when the pricing_config table is missing a key.
// A missing parameter is never fatal (the values mirror the seed data).
const (
	DefaultBaseFare          = 50.0
	DefaultAirportFee        = 150.0
	DefaultRoundTripDiscount = 10.0 // percent
	DefaultMinimumFare       = 1200.0
	DefaultPerKmRate         = 25.0
)

// VehicleClass is one transfer vehicle category as stored. Read-only to the
// engine; administration happens elsewhere.
type VehicleClass struct {
	ID              int64
	Type            string // stable type code, e.g. "vito", "luxury_sedan"
	NameEN          string
	NameTR          string
	CapacityMin     int
	CapacityMax     int
	BaggageCapacity int
	BaseMultiplier  float64
	Active          bool
}

// RatedVehicle is a vehicle class with its pricing parameters resolved:
// per-km rate and minimum fare fall back from per-class values to globals,
// base fare and airport fee are global only.
type RatedVehicle struct {
	VehicleClass
	PerKmRate   float64
	BaseFare    float64
	AirportFee  float64
	MinimumFare float64
}

// Params holds the resolved global pricing parameters.
type Params struct {
	BaseFare          float64
	AirportFee        float64
	RoundTripDiscount float64 // percent
	MinimumFare       float64
	PerKmRate         float64 // fallback for classes without their own rate
}

// ParamRow is one raw pricing_config record. VehicleType is nil for global
// parameters.
type ParamRow struct {
	Key         string
	Value       float64
	VehicleType *string
}
