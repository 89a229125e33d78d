// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shuttleport/internal/http/handlers"
	"shuttleport/internal/http/middleware"
)

// RouterDeps carries the services the transport exposes. Distance and Places
// may be nil when no maps API key is configured; the handlers answer 503 for
// those routes in that case.
type RouterDeps struct {
	Engine   handlers.QuoteEngine
	Catalog  handlers.Catalog
	Distance handlers.DistanceEstimator
	Places   handlers.PlaceSearcher
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	pricingHandler := handlers.NewPricingHandler(deps.Engine, deps.Catalog)
	r.GET("/api/pricing/vehicles", pricingHandler.Vehicles)
	r.POST("/api/pricing/calculate", pricingHandler.Calculate)
	r.GET("/api/pricing/fixed-routes", pricingHandler.FixedRoutes)

	mapsHandler := handlers.NewMapsHandler(deps.Distance, deps.Places)
	r.POST("/api/maps/distance", mapsHandler.Distance)
	r.POST("/api/maps/search-places", mapsHandler.SearchPlaces)

	return r
}
