package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JTanner04/InstagramSpots/internal/discovery"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

// DiscoverPlacesInput defines the query parameters for the discover endpoint
type DiscoverPlacesInput struct {
	Latitude     *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude    *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	Vibe         string   `form:"vibe"`
	Mode         string   `form:"mode"`
	DriveMinutes float64  `form:"driveMinutes"`
	FlyHours     float64  `form:"flyHours"`
	OutOfState   bool     `form:"outOfState"`
	MinCount     int      `form:"minCount"`
}

// DiscoverPlacesResponse is the result of a discovery search
type DiscoverPlacesResponse struct {
	SearchID     string        `json:"searchId" example:"1f0c3a5e-9a55-4c1b-8b43-5e8d7b3f6a21"`
	RadiusKm     float64       `json:"radiusKm" example:"81"`
	OriginRegion types.Region  `json:"originRegion"`
	Count        int           `json:"count" example:"42"`
	Places       []types.Place `json:"places"`
}

// handleDiscoverPlaces godoc
// @Summary Discover places
// @Description Search for photogenic places reachable from a point within a travel budget. Places are returned in search order.
// @Tags places
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(39.7392)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-104.9903)
// @Param vibe query string false "Search vibe" Enums(instagrammable, nature, city, foodie, art, nightlife) default(instagrammable)
// @Param mode query string false "Travel mode" Enums(drive, fly) default(drive)
// @Param driveMinutes query number false "Driving budget in minutes" example(90)
// @Param flyHours query number false "Flying budget in hours" example(2)
// @Param outOfState query bool false "Include places outside the origin's state" default(false)
// @Param minCount query int false "Soft minimum of raw candidates to collect" example(50)
// @Success 200 {object} DiscoverPlacesResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /places/discover [get]
func (app *App) handleDiscoverPlaces(c *gin.Context) {
	var input DiscoverPlacesInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := discovery.Request{
		Origin: types.NewCoords(*input.Latitude, *input.Longitude),
		Preferences: discovery.Preferences{
			Vibe:         discovery.ParseVibe(input.Vibe),
			Mode:         discovery.ParseTravelMode(input.Mode),
			DriveMinutes: input.DriveMinutes,
			FlyHours:     input.FlyHours,
			OutOfState:   input.OutOfState,
		},
		MinCount: input.MinCount,
	}

	// Delegate to business layer
	result, err := app.discoveryService.FindPlaces(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidLatitude), errors.Is(err, types.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, discovery.ErrMissingGeocodingToken):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
		default:
			app.logger.Error("failed to discover places",
				"latitude", *input.Latitude,
				"longitude", *input.Longitude,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to discover places"})
		}
		return
	}

	c.JSON(http.StatusOK, DiscoverPlacesResponse{
		SearchID:     result.SearchID,
		RadiusKm:     result.RadiusKm,
		OriginRegion: result.OriginRegion,
		Count:        len(result.Places),
		Places:       result.Places,
	})
}
