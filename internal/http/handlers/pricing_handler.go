// README: Pricing handlers: quote calculation, vehicle catalog, fixed-route report.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shuttleport/internal/modules/catalog"
	"shuttleport/internal/modules/pricing"
	"shuttleport/internal/types"
)

// QuoteEngine is the part of the pricing service the transport needs.
type QuoteEngine interface {
	ComputeQuotes(ctx context.Context, req pricing.QuoteRequest) (*pricing.QuoteResult, error)
	ListFixedRoutes(ctx context.Context) ([]pricing.RouteGroup, error)
}

// Catalog supplies the active vehicle classes with resolved rates.
type Catalog interface {
	ActiveVehicles(ctx context.Context) ([]catalog.RatedVehicle, error)
}

type PricingHandler struct {
	engine  QuoteEngine
	catalog Catalog
}

func NewPricingHandler(engine QuoteEngine, cat Catalog) *PricingHandler {
	return &PricingHandler{engine: engine, catalog: cat}
}

type calculateReq struct {
	OriginLat         float64 `json:"origin_lat"`
	OriginLng         float64 `json:"origin_lng"`
	OriginName        string  `json:"origin_name"`
	DestinationLat    float64 `json:"destination_lat"`
	DestinationLng    float64 `json:"destination_lng"`
	DestinationName   string  `json:"destination_name"`
	DistanceKm        float64 `json:"distance_km"`
	DurationMinutes   int     `json:"duration_minutes"`
	PassengerCount    int     `json:"passenger_count"`
	IsRoundTrip       bool    `json:"is_round_trip"`
	IsAirportTransfer bool    `json:"is_airport_transfer"`
}

type quoteLineResp struct {
	VehicleType       string             `json:"vehicle_type"`
	VehicleName       string             `json:"vehicle_name"`
	VehicleNameTR     string             `json:"vehicle_name_tr"`
	Capacity          int                `json:"capacity"`
	BasePrice         float64            `json:"base_price"`
	DistancePrice     float64            `json:"distance_price"`
	AirportFee        float64            `json:"airport_fee"`
	Subtotal          float64            `json:"subtotal"`
	RoundTripDiscount float64            `json:"round_trip_discount"`
	FinalPrice        float64            `json:"final_price"`
	Currency          string             `json:"currency"`
	IsFixedRoute      bool               `json:"is_fixed_route"`
	MinimumApplied    bool               `json:"minimum_fare_applied"`
	PriceBreakdown    map[string]float64 `json:"price_breakdown"`
}

type calculateResp struct {
	RouteInfo map[string]any  `json:"route_info"`
	Vehicles  []quoteLineResp `json:"vehicles"`
}

func (h *PricingHandler) Calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OriginName == "" || req.DestinationName == "" {
		writeError(c, http.StatusBadRequest, "origin_name and destination_name are required")
		return
	}
	if req.DistanceKm <= 0 {
		writeError(c, http.StatusBadRequest, "distance_km must be positive")
		return
	}
	if req.PassengerCount < 1 {
		req.PassengerCount = 1
	}

	result, err := h.engine.ComputeQuotes(c.Request.Context(), pricing.QuoteRequest{
		Origin:           req.OriginName,
		Destination:      req.DestinationName,
		OriginPoint:      types.Point{Lat: req.OriginLat, Lng: req.OriginLng},
		DestinationPoint: types.Point{Lat: req.DestinationLat, Lng: req.DestinationLng},
		DistanceKm:       req.DistanceKm,
		DurationMin:      req.DurationMinutes,
		PassengerCount:   req.PassengerCount,
		RoundTrip:        req.IsRoundTrip,
		AirportTransfer:  req.IsAirportTransfer,
	})
	if err != nil {
		writePricingError(c, err)
		return
	}

	vehicles := make([]quoteLineResp, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		vehicles = append(vehicles, quoteLineResp{
			VehicleType:       q.VehicleType,
			VehicleName:       q.VehicleName,
			VehicleNameTR:     q.VehicleNameTR,
			Capacity:          q.Capacity,
			BasePrice:         q.BaseFare,
			DistancePrice:     q.DistanceCharge,
			AirportFee:        q.AirportFee,
			Subtotal:          q.Subtotal,
			RoundTripDiscount: q.Discount,
			FinalPrice:        q.FinalPrice,
			Currency:          q.Currency,
			IsFixedRoute:      q.FixedRoute,
			MinimumApplied:    q.MinimumApplied,
			PriceBreakdown: map[string]float64{
				"base_fare":       q.BaseFare,
				"distance_charge": q.DistanceCharge,
				"airport_fee":     q.AirportFee,
				"subtotal":        q.Subtotal,
				"discount":        q.Discount,
				"final":           q.FinalPrice,
			},
		})
	}

	writeJSON(c, http.StatusOK, calculateResp{
		RouteInfo: map[string]any{
			"origin":              result.Route.Origin,
			"destination":         result.Route.Destination,
			"distance_km":         result.Route.DistanceKm,
			"duration_minutes":    result.Route.DurationMin,
			"is_round_trip":       result.Route.RoundTrip,
			"is_airport_transfer": result.Route.AirportTransfer,
			"is_fixed_route":      result.Route.FixedRoute,
		},
		Vehicles: vehicles,
	})
}

type vehicleResp struct {
	VehicleType     string  `json:"vehicle_type"`
	NameEN          string  `json:"name_en"`
	NameTR          string  `json:"name_tr"`
	CapacityMin     int     `json:"capacity_min"`
	CapacityMax     int     `json:"capacity_max"`
	BaggageCapacity int     `json:"baggage_capacity"`
	PerKmRate       float64 `json:"per_km_rate"`
	BaseFare        float64 `json:"base_fare"`
	AirportFee      float64 `json:"airport_fee"`
	MinimumFare     float64 `json:"minimum_fare"`
}

func (h *PricingHandler) Vehicles(c *gin.Context) {
	vehicles, err := h.catalog.ActiveVehicles(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	resp := make([]vehicleResp, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, vehicleResp{
			VehicleType:     v.Type,
			NameEN:          v.NameEN,
			NameTR:          v.NameTR,
			CapacityMin:     v.CapacityMin,
			CapacityMax:     v.CapacityMax,
			BaggageCapacity: v.BaggageCapacity,
			PerKmRate:       v.PerKmRate,
			BaseFare:        v.BaseFare,
			AirportFee:      v.AirportFee,
			MinimumFare:     v.MinimumFare,
		})
	}
	writeJSON(c, http.StatusOK, resp)
}

type routeGroupResp struct {
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	Prices      map[string]float64 `json:"prices"`
}

func (h *PricingHandler) FixedRoutes(c *gin.Context) {
	groups, err := h.engine.ListFixedRoutes(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	routes := make([]routeGroupResp, 0, len(groups))
	for _, g := range groups {
		routes = append(routes, routeGroupResp{
			Origin:      g.Origin,
			Destination: g.Destination,
			Prices:      g.Prices,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"routes": routes})
}
