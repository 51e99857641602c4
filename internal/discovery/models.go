package discovery

import (
	"errors"
	"strings"

	"github.com/JTanner04/InstagramSpots/internal/types"
)

// ErrMissingGeocodingToken is returned when no geocoding credential is
// configured. No provider is queried in that case.
var ErrMissingGeocodingToken = errors.New("geocoding access token is not configured")

// DefaultMinCount is the soft minimum used when a request does not set one.
const DefaultMinCount = 50

// Vibe selects the primary keyword group used for searching.
type Vibe string

const (
	VibeInstagrammable Vibe = "instagrammable"
	VibeNature         Vibe = "nature"
	VibeCity           Vibe = "city"
	VibeFoodie         Vibe = "foodie"
	VibeArt            Vibe = "art"
	VibeNightlife      Vibe = "nightlife"
)

// Vibes lists every supported vibe.
var Vibes = []Vibe{VibeInstagrammable, VibeNature, VibeCity, VibeFoodie, VibeArt, VibeNightlife}

// ParseVibe converts a string to a Vibe. Unknown or empty values map to
// VibeInstagrammable.
func ParseVibe(s string) Vibe {
	normalized := Vibe(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Vibes {
		if v == normalized {
			return v
		}
	}
	return VibeInstagrammable
}

// TravelMode determines how the search radius is derived from the time budget.
type TravelMode string

const (
	TravelModeDrive TravelMode = "drive"
	TravelModeFly   TravelMode = "fly"
)

// ParseTravelMode converts a string to a TravelMode. Anything other than
// "fly" is treated as driving.
func ParseTravelMode(s string) TravelMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fly", "flight", "plane":
		return TravelModeFly
	default:
		return TravelModeDrive
	}
}

// Preferences are the user-selected search options for a single call.
type Preferences struct {
	Vibe         Vibe       `json:"vibe"`
	Mode         TravelMode `json:"mode"`
	DriveMinutes float64    `json:"driveMinutes"`
	FlyHours     float64    `json:"flyHours"`
	OutOfState   bool       `json:"outOfState"`
}

// Request describes one discovery call.
type Request struct {
	Origin      types.Coords `json:"origin"`
	Preferences Preferences  `json:"preferences"`
	// MinCount is the soft minimum number of raw candidates to collect before
	// searching stops. Values <= 0 use the service default.
	MinCount int `json:"minCount"`
}

// Result is the outcome of a discovery call. Places are in search order.
type Result struct {
	SearchID      string        `json:"searchId"`
	Places        []types.Place `json:"places"`
	RadiusKm      float64       `json:"radiusKm"`
	OriginRegion  types.Region  `json:"originRegion"`
	QueriesIssued int           `json:"queriesIssued"`
	QueriesFailed int           `json:"queriesFailed"`
}
