package types

// Region is an administrative region such as a US state or a province.
type Region struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"` // ISO 3166-2, e.g. "US-CO"
}

func (r Region) IsZero() bool {
	return r.Name == "" && r.Code == ""
}

// Label returns the most readable identifier available.
func (r Region) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Code
}
