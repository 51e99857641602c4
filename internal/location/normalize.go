package location

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/JTanner04/InstagramSpots/internal/types"
)

// usStates maps folded US state names to postal abbreviations.
var usStates = map[string]string{
	"alabama": "al", "alaska": "ak", "arizona": "az", "arkansas": "ar",
	"california": "ca", "colorado": "co", "connecticut": "ct", "delaware": "de",
	"district of columbia": "dc", "florida": "fl", "georgia": "ga", "hawaii": "hi",
	"idaho": "id", "illinois": "il", "indiana": "in", "iowa": "ia",
	"kansas": "ks", "kentucky": "ky", "louisiana": "la", "maine": "me",
	"maryland": "md", "massachusetts": "ma", "michigan": "mi", "minnesota": "mn",
	"mississippi": "ms", "missouri": "mo", "montana": "mt", "nebraska": "ne",
	"nevada": "nv", "new hampshire": "nh", "new jersey": "nj", "new mexico": "nm",
	"new york": "ny", "north carolina": "nc", "north dakota": "nd", "ohio": "oh",
	"oklahoma": "ok", "oregon": "or", "pennsylvania": "pa", "rhode island": "ri",
	"south carolina": "sc", "south dakota": "sd", "tennessee": "tn", "texas": "tx",
	"utah": "ut", "vermont": "vt", "virginia": "va", "washington": "wa",
	"west virginia": "wv", "wisconsin": "wi", "wyoming": "wy",
}

var usAbbreviations = func() map[string]bool {
	m := make(map[string]bool, len(usStates))
	for _, abbr := range usStates {
		m[abbr] = true
	}
	return m
}()

// NormalizeRegionName folds case, strips accents and collapses whitespace.
// US state names and postal abbreviations (optionally "US-" prefixed) all
// normalize to the lower-case abbreviation.
func NormalizeRegionName(s string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		stripped = s
	}

	key := strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
	key = strings.TrimPrefix(key, "state of ")

	if abbr, ok := usStates[key]; ok {
		return abbr
	}
	if code, ok := strings.CutPrefix(key, "us-"); ok && usAbbreviations[code] {
		return code
	}
	return key
}

// SameRegion reports whether a and b name the same administrative region.
// ISO codes decide when both are present; otherwise normalized names are
// compared. Two unknown regions never match.
func SameRegion(a, b types.Region) bool {
	if a.Code != "" && b.Code != "" {
		return strings.EqualFold(a.Code, b.Code)
	}

	ka := regionKey(a)
	kb := regionKey(b)
	return ka != "" && ka == kb
}

func regionKey(r types.Region) string {
	if r.Name != "" {
		return NormalizeRegionName(r.Name)
	}
	return NormalizeRegionName(r.Code)
}
