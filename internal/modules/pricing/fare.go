// README: Dynamic fare calculation: distance pricing, round-trip discount, minimum fare floor.
package pricing

import (
	"math"

	"shuttleport/internal/modules/catalog"
)

// CalculateFare prices one vehicle class for the request. When fixedPrice is
// set the flat rate replaces the distance formula entirely (it is inclusive
// of base fare and airport fee) and the minimum-fare floor does not apply.
//
// Only the final price is rounded; intermediate values keep full precision.
func CalculateFare(v catalog.RatedVehicle, params catalog.Params, req QuoteRequest, fixedPrice *float64) QuoteLine {
	var baseFare, distanceCharge, airportFee float64
	if fixedPrice != nil {
		distanceCharge = *fixedPrice
	} else {
		baseFare = v.BaseFare
		distanceCharge = req.DistanceKm * v.PerKmRate
		if req.AirportTransfer {
			airportFee = v.AirportFee
		}
	}

	subtotal := baseFare + distanceCharge + airportFee

	var discount float64
	if req.RoundTrip {
		discount = subtotal * params.RoundTripDiscount / 100
	}
	final := subtotal - discount

	// Round trips double the discounted single leg and subtract the discount
	// once more. The net effect is intentionally smaller than doubling the
	// subtotal and discounting once; this reproduces the established rate
	// sheet and must not be "simplified".
	if req.RoundTrip && fixedPrice == nil {
		final = final*2 - discount
	}

	minimumApplied := false
	if fixedPrice == nil && final < v.MinimumFare {
		final = v.MinimumFare
		minimumApplied = true
	}

	return QuoteLine{
		VehicleType:    v.Type,
		VehicleName:    v.NameEN,
		VehicleNameTR:  v.NameTR,
		Capacity:       v.CapacityMax,
		BaseFare:       baseFare,
		DistanceCharge: distanceCharge,
		AirportFee:     airportFee,
		Subtotal:       subtotal,
		Discount:       discount,
		FinalPrice:     round2(final),
		Currency:       Currency,
		FixedRoute:     fixedPrice != nil,
		MinimumApplied: minimumApplied,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
