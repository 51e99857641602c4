package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JTanner04/InstagramSpots/internal/location"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

// GetRegionInput defines the query parameters for the region endpoint
type GetRegionInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleGetRegion godoc
// @Summary Get region
// @Description Resolve the state or province containing a latitude and longitude
// @Tags location
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(39.11539)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-107.65840)
// @Success 200 {object} types.Region
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /location/region [get]
func (app *App) handleGetRegion(c *gin.Context) {
	var input GetRegionInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	region, err := app.locationService.ResolveRegion(c.Request.Context(), types.NewCoords(*input.Latitude, *input.Longitude))
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, location.ErrRegionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to resolve region",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve region"})
		return
	}

	c.JSON(http.StatusOK, region)
}
