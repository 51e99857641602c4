package discovery

import (
	"github.com/JTanner04/InstagramSpots/internal/location"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

// Dedupe keeps the first place seen for each ID, preserving order.
func Dedupe(places []types.Place) []types.Place {
	seen := make(map[string]struct{}, len(places))
	out := make([]types.Place, 0, len(places))
	for _, p := range places {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// FilterByDistance keeps places within MaxDistance(radiusKm) of the origin.
func FilterByDistance(places []types.Place, radiusKm float64) []types.Place {
	limit := MaxDistance(radiusKm)
	out := make([]types.Place, 0, len(places))
	for _, p := range places {
		if p.DistanceKm <= limit {
			out = append(out, p)
		}
	}
	return out
}

// FilterByRegion keeps places in origin's region and places whose region is
// unknown. When nothing would remain, or origin is unknown, places is
// returned unchanged.
func FilterByRegion(places []types.Place, origin types.Region) []types.Place {
	if origin.IsZero() {
		return places
	}

	out := make([]types.Place, 0, len(places))
	for _, p := range places {
		if p.State.IsZero() || location.SameRegion(p.State, origin) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return places
	}
	return out
}
