package measure

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/logistics-platform/libs/go/measures/collections/set"
)

// normalizeUnit applies the normalization shared by every unit family:
// NFKC compatibility folding, lower-casing, and trimming. NFKC maps
// the micro sign onto Greek mu and superscript digits onto plain
// digits, so "µg" matches "μg" and "m³" matches "m3".
func normalizeUnit(text string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(text)))
}

// normalizeCompactUnit additionally strips internal spaces. Used by
// the linear families whose alias tables contain multi-word forms
// ("nautical mile", "long tn"); Temperature keeps spacing intact and
// strips a decorative degree sign instead.
func normalizeCompactUnit(text string) string {
	return strings.ReplaceAll(normalizeUnit(text), " ", "")
}

// normalizeTemperatureUnit strips a leading degree sign after the
// shared normalization, so "°C" and "℃" both resolve to "c".
func normalizeTemperatureUnit(text string) string {
	return strings.TrimPrefix(normalizeUnit(text), "°")
}

// buildAliasIndex flattens a per-unit alias table into a lookup map.
// Alias collisions across units are a programming error in the table
// itself, so they fail loudly at init.
func buildAliasIndex[U comparable](kind string, table map[U][]string, normalize func(string) string) map[string]U {
	index := make(map[string]U)
	keys := make([]string, 0, len(table)*4)
	for unit, aliases := range table {
		for _, alias := range aliases {
			key := normalize(alias)
			keys = append(keys, key)
			index[key] = unit
		}
	}
	if dup, ok := set.FirstDuplicate(keys); ok {
		panic("measure: duplicate alias " + strconv.Quote(dup) + " in " + kind + " unit table")
	}
	return index
}

// clampNonNegative floors a canonical value at zero. Conversion
// factors are always positive, so a single post-conversion clamp is
// enough to guarantee no negative canonical value ever exists.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// formatValue renders a scalar with the shortest exact representation.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// compareValues is the total order shared by all quantity kinds.
func compareValues(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
