package mapbox

import (
	"github.com/paulmach/orb/geojson"
)

// GeocodeAPIResponse is the raw geocoding v5 response, a GeoJSON
// FeatureCollection with Mapbox-specific members on each feature.
type GeocodeAPIResponse struct {
	Type        string       `json:"type"`
	Query       []any        `json:"query"`
	Features    []APIFeature `json:"features"`
	Attribution string       `json:"attribution"`
}

type APIFeature struct {
	Id         string            `json:"id"`
	Type       string            `json:"type"`
	PlaceType  []string          `json:"place_type"`
	Relevance  float64           `json:"relevance"`
	Text       string            `json:"text"`
	PlaceName  string            `json:"place_name"`
	Center     []float64         `json:"center"`
	Geometry   *geojson.Geometry `json:"geometry"`
	Context    []APIContext      `json:"context"`
	Properties map[string]any    `json:"properties"`
}

type APIContext struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	ShortCode string `json:"short_code"`
	Wikidata  string `json:"wikidata"`
}
