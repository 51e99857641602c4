package discovery

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// catchAllKeyword matches any point of interest near the origin.
const catchAllKeyword = "poi"

// KeywordCatalog holds the search keywords for each vibe. Searches run the
// primary group for the vibe, then the fallback group, then the catch-all.
type KeywordCatalog struct {
	Vibes    map[Vibe][]string `yaml:"vibes"`
	Fallback []string          `yaml:"fallback"`
	CatchAll []string          `yaml:"catch_all,omitempty"`
}

// DefaultKeywordCatalog returns the built-in keywords.
func DefaultKeywordCatalog() *KeywordCatalog {
	return &KeywordCatalog{
		Vibes: map[Vibe][]string{
			VibeNature:    {"scenic overlook", "viewpoint", "national park", "park", "trailhead"},
			VibeCity:      {"landmark", "observation deck", "historic district", "square", "museum"},
			VibeFoodie:    {"famous restaurant", "food hall", "market", "iconic cafe"},
			VibeArt:       {"mural", "public art", "art installation", "gallery"},
			VibeNightlife: {"rooftop bar", "speakeasy", "club"},
			VibeInstagrammable: {
				"instagram spot",
				"tourist attraction",
				"iconic view",
				"landmark",
				"mural",
				"viewpoint",
				"photo spot",
				"observation deck",
			},
		},
		Fallback: []string{"park", "landmark", "tourist attraction", "viewpoint"},
		CatchAll: []string{catchAllKeyword},
	}
}

// LoadKeywordCatalog reads a YAML keyword file. Vibes and groups missing from
// the file keep their built-in keywords.
func LoadKeywordCatalog(path string) (*KeywordCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword file: %w", err)
	}

	var file KeywordCatalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse keyword file: %w", err)
	}

	catalog := DefaultKeywordCatalog()
	for name, keywords := range file.Vibes {
		vibe := Vibe(strings.ToLower(strings.TrimSpace(string(name))))
		if !slices.Contains(Vibes, vibe) {
			return nil, fmt.Errorf("unknown vibe %q in keyword file", name)
		}
		if kw := cleanKeywords(keywords); len(kw) > 0 {
			catalog.Vibes[vibe] = kw
		}
	}
	if kw := cleanKeywords(file.Fallback); len(kw) > 0 {
		catalog.Fallback = kw
	}
	if kw := cleanKeywords(file.CatchAll); len(kw) > 0 {
		catalog.CatchAll = kw
	}

	return catalog, nil
}

// Groups returns the keyword groups for vibe in search order.
func (c *KeywordCatalog) Groups(vibe Vibe) [][]string {
	primary, ok := c.Vibes[vibe]
	if !ok {
		primary = c.Vibes[VibeInstagrammable]
	}

	catchAll := c.CatchAll
	if len(catchAll) == 0 {
		catchAll = []string{catchAllKeyword}
	}

	groups := make([][]string, 0, 3)
	for _, g := range [][]string{primary, c.Fallback, catchAll} {
		if len(g) > 0 {
			groups = append(groups, slices.Clone(g))
		}
	}
	return groups
}

func cleanKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
