// README: Maps handlers for distance lookup and place search.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	mapssvc "shuttleport/internal/maps"
	"shuttleport/internal/types"
)

// DistanceEstimator is the distance-lookup collaborator the transport needs.
type DistanceEstimator interface {
	Estimate(ctx context.Context, origin, destination types.Point) (mapssvc.DistanceResult, error)
}

// PlaceSearcher resolves free-text place queries.
type PlaceSearcher interface {
	Search(ctx context.Context, query string, near *types.Point) ([]mapssvc.Place, error)
}

type MapsHandler struct {
	distance DistanceEstimator
	places   PlaceSearcher
}

func NewMapsHandler(distance DistanceEstimator, places PlaceSearcher) *MapsHandler {
	return &MapsHandler{distance: distance, places: places}
}

type distanceReq struct {
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
}

func (h *MapsHandler) Distance(c *gin.Context) {
	if h.distance == nil {
		writeError(c, http.StatusServiceUnavailable, "maps api key not configured")
		return
	}
	var req distanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.distance.Estimate(c.Request.Context(),
		types.Point{Lat: req.OriginLat, Lng: req.OriginLng},
		types.Point{Lat: req.DestinationLat, Lng: req.DestinationLng})
	if err != nil {
		writeMapsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

type placeSearchReq struct {
	Query       string   `json:"query"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
}

func (h *MapsHandler) SearchPlaces(c *gin.Context) {
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "maps api key not configured")
		return
	}
	var req placeSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Query == "" {
		writeError(c, http.StatusBadRequest, "query is required")
		return
	}
	var near *types.Point
	if req.LocationLat != nil && req.LocationLng != nil {
		near = &types.Point{Lat: *req.LocationLat, Lng: *req.LocationLng}
	}
	places, err := h.places.Search(c.Request.Context(), req.Query, near)
	if err != nil {
		writeMapsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"places": places})
}
