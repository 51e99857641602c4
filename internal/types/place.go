package types

import "strings"

// Place is a discovered destination. Values are never mutated after
// construction; enrichment produces a new Place.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Coordinates Coords  `json:"coordinates"`
	City        string  `json:"city,omitempty"`
	State       Region  `json:"state"`
	Country     string  `json:"country,omitempty"`
	DistanceKm  float64 `json:"distanceKm"`
	PhotoURL    string  `json:"photoUrl,omitempty"`
}

// PlaceInfo holds the provider data a Place is built from.
type PlaceInfo struct {
	ID          string
	Name        string
	Coordinates Coords
	City        string
	State       Region
	Country     string
}

// NewPlace builds a Place and computes its distance from origin.
func NewPlace(info PlaceInfo, origin Coords) Place {
	return Place{
		ID:          info.ID,
		Name:        info.Name,
		Coordinates: info.Coordinates,
		City:        info.City,
		State:       info.State,
		Country:     info.Country,
		DistanceKm:  HaversineKm(origin, info.Coordinates),
	}
}

// WithPhoto returns a copy of p annotated with a photo URL.
func (p Place) WithPhoto(url string) Place {
	p.PhotoURL = url
	return p
}

// PhotoQuery is the free-text query used to look up a representative photo:
// name, city and state, skipping empty parts.
func (p Place) PhotoQuery() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Name, p.City, p.State.Name} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
