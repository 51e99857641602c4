package types

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Kilometers per degree, used to size search bounding boxes.
const (
	KmPerDegreeLatitude  = 110.574
	KmPerDegreeLongitude = 111.320
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// CoordsFromPoint converts a GeoJSON-ordered [lon, lat] point.
func CoordsFromPoint(p orb.Point) Coords {
	return NewCoords(p.Lat(), p.Lon())
}

// Point returns the coordinate as a GeoJSON-ordered orb.Point.
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Validate checks that the coordinate is a finite point on the globe.
func (c Coords) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: got %v", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}

func (c Coords) String() string {
	return fmt.Sprintf("(%.5f,%.5f)", c.Latitude, c.Longitude)
}

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b Coords) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}

// BoundAround returns a lon/lat box extending radiusKm from center in each
// cardinal direction, clamped to the valid coordinate range.
func BoundAround(center Coords, radiusKm float64) orb.Bound {
	dLat := radiusKm / KmPerDegreeLatitude

	lonScale := KmPerDegreeLongitude * math.Cos(toRadians(center.Latitude))
	if lonScale < 1e-6 {
		lonScale = 1e-6
	}
	dLon := radiusKm / lonScale

	return orb.Bound{
		Min: orb.Point{clamp(center.Longitude-dLon, -180, 180), clamp(center.Latitude-dLat, -90, 90)},
		Max: orb.Point{clamp(center.Longitude+dLon, -180, 180), clamp(center.Latitude+dLat, -90, 90)},
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
