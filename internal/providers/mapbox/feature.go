package mapbox

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/JTanner04/InstagramSpots/internal/types"
)

// Context id prefixes, e.g. "place.2915387", "region.9622", "country.8940".
const (
	contextPlace   = "place"
	contextRegion  = "region"
	contextCountry = "country"
)

var ErrInvalidFeature = errors.New("invalid feature")

// Feature is a validated geocoding result.
type Feature struct {
	Id      string
	Name    string
	Center  types.Coords
	City    string
	Region  types.Region
	Country string
}

// PlaceInfo converts the feature into the data a types.Place is built from.
func (f Feature) PlaceInfo() types.PlaceInfo {
	return types.PlaceInfo{
		ID:          f.Id,
		Name:        f.Name,
		Coordinates: f.Center,
		City:        f.City,
		State:       f.Region,
		Country:     f.Country,
	}
}

// parseFeature validates a raw feature. Features without an id or a usable
// point are rejected.
func parseFeature(raw APIFeature) (Feature, error) {
	id := strings.TrimSpace(raw.Id)
	if id == "" {
		return Feature{}, fmt.Errorf("%w: missing id", ErrInvalidFeature)
	}

	center, err := featureCenter(raw)
	if err != nil {
		return Feature{}, fmt.Errorf("%w: %s: %v", ErrInvalidFeature, id, err)
	}

	name := strings.TrimSpace(raw.Text)
	if name == "" {
		name = strings.TrimSpace(raw.PlaceName)
	}
	if name == "" {
		name = "Unknown"
	}

	f := Feature{
		Id:     id,
		Name:   name,
		Center: center,
	}

	for _, c := range raw.Context {
		switch contextKind(c.Id) {
		case contextPlace:
			if f.City == "" {
				f.City = c.Text
			}
		case contextRegion:
			if f.Region.IsZero() {
				f.Region = types.Region{Name: c.Text, Code: strings.ToUpper(c.ShortCode)}
			}
		case contextCountry:
			if f.Country == "" {
				f.Country = c.Text
			}
		}
	}

	return f, nil
}

// featureCenter prefers the "center" member and falls back to a point geometry.
func featureCenter(raw APIFeature) (types.Coords, error) {
	if len(raw.Center) == 2 {
		c := types.NewCoords(raw.Center[1], raw.Center[0])
		if isFinite(c) && c.Validate() == nil {
			return c, nil
		}
	}

	if raw.Geometry != nil {
		if p, ok := raw.Geometry.Geometry().(orb.Point); ok {
			c := types.CoordsFromPoint(p)
			if isFinite(c) && c.Validate() == nil {
				return c, nil
			}
		}
	}

	return types.Coords{}, errors.New("no valid center coordinate")
}

func contextKind(id string) string {
	kind, _, _ := strings.Cut(id, ".")
	return kind
}

func isFinite(c types.Coords) bool {
	return !math.IsInf(c.Latitude, 0) && !math.IsInf(c.Longitude, 0) &&
		!math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude)
}
