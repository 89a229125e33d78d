// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mapssvc "shuttleport/internal/maps"
	"shuttleport/internal/modules/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePricingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrNoVehicleAvailable):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeMapsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mapssvc.ErrNoRoute):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusBadGateway, "maps api error")
	}
}
