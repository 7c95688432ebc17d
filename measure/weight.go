package measure

import (
	"encoding/json"
	"fmt"

	"github.com/logistics-platform/libs/go/measures/fault"
)

// WeightUnit is a closed enum of supported weight units.
type WeightUnit int

// Supported weight units.
const (
	Microgram WeightUnit = iota
	Milligram
	Gram
	Kilogram
	Ton
	Pound
	Ounce
	Stone
	LongTon
	ShortTon
	Carat
)

// weightWireSymbol is the unit tag every Weight serializes with.
const weightWireSymbol = "g"

// weightFactors maps each unit to its size in grams.
var weightFactors = map[WeightUnit]float64{
	Microgram: 0.000001,
	Milligram: 0.001,
	Gram:      1,
	Kilogram:  1000,
	Ton:       1000000,
	Pound:     453.59237,
	Ounce:     28.349523125,
	Stone:     6350.29318,
	LongTon:   1016046.9088,
	ShortTon:  907184.74,
	Carat:     0.2,
}

// weightSymbols maps each unit to its canonical short symbol.
var weightSymbols = map[WeightUnit]string{
	Microgram: "µg",
	Milligram: "mg",
	Gram:      "g",
	Kilogram:  "kg",
	Ton:       "t",
	Pound:     "lb",
	Ounce:     "oz",
	Stone:     "st.",
	LongTon:   "long tn",
	ShortTon:  "short tn",
	Carat:     "ct",
}

// weightUnitAliases lists the accepted spellings per unit. The micro
// sign and Greek mu collapse under NFKC, so "µg" and "μg" both match.
var weightUnitAliases = map[WeightUnit][]string{
	Microgram: {"µg", "mcg", "microgram", "micrograms"},
	Milligram: {"mg", "milligram", "milligrams"},
	Gram:      {"g", "gram", "grams"},
	Kilogram:  {"kg", "kilogram", "kilograms", "kilo", "kilos"},
	Ton:       {"t", "ton", "tons", "tonne", "tonnes"},
	Pound:     {"lb", "lbs", "pound", "pounds"},
	Ounce:     {"oz", "ounce", "ounces"},
	Stone:     {"st.", "st", "stone", "stones"},
	LongTon:   {"long tn", "long ton", "long tons"},
	ShortTon:  {"short tn", "short ton", "short tons"},
	Carat:     {"ct", "carat", "carats"},
}

var weightAliasIndex = buildAliasIndex("weight", weightUnitAliases, normalizeCompactUnit)

// ParseWeightUnit resolves a lenient unit string to its enumerator.
func ParseWeightUnit(text string) (WeightUnit, error) {
	if u, ok := weightAliasIndex[normalizeCompactUnit(text)]; ok {
		return u, nil
	}
	return 0, fault.InvalidUnit(text)
}

// IsValidWeightUnitString reports whether text parses to a weight unit.
func IsValidWeightUnitString(text string) bool {
	_, ok := weightAliasIndex[normalizeCompactUnit(text)]
	return ok
}

// Symbol returns the canonical short symbol for the unit.
func (u WeightUnit) Symbol() (string, error) {
	if s, ok := weightSymbols[u]; ok {
		return s, nil
	}
	return "", fault.InvalidUnitValue("weight", int(u))
}

// String implements fmt.Stringer.
func (u WeightUnit) String() string {
	if s, ok := weightSymbols[u]; ok {
		return s
	}
	return fmt.Sprintf("WeightUnit(%d)", int(u))
}

// Weight is a mass stored canonically in grams.
type Weight struct {
	grams float64
}

// NewWeight creates a Weight from a value in the given unit,
// normalizing to grams immediately. Negative inputs clamp to zero.
func NewWeight(value float64, unit WeightUnit) (Weight, error) {
	factor, ok := weightFactors[unit]
	if !ok {
		return Weight{}, fault.InvalidUnitValue("weight", int(unit))
	}
	return Weight{grams: clampNonNegative(value * factor)}, nil
}

// Named factories per unit.

func Micrograms(v float64) Weight { return weightIn(v, Microgram) }
func Milligrams(v float64) Weight { return weightIn(v, Milligram) }
func Grams(v float64) Weight      { return weightIn(v, Gram) }
func Kilograms(v float64) Weight  { return weightIn(v, Kilogram) }
func Tons(v float64) Weight       { return weightIn(v, Ton) }
func Pounds(v float64) Weight     { return weightIn(v, Pound) }
func Ounces(v float64) Weight     { return weightIn(v, Ounce) }
func Stones(v float64) Weight     { return weightIn(v, Stone) }
func LongTons(v float64) Weight   { return weightIn(v, LongTon) }
func ShortTons(v float64) Weight  { return weightIn(v, ShortTon) }
func Carats(v float64) Weight     { return weightIn(v, Carat) }

func weightIn(v float64, unit WeightUnit) Weight {
	return Weight{grams: clampNonNegative(v * weightFactors[unit])}
}

// Per-unit views, derived from the canonical value on demand.

func (w Weight) Micrograms() float64 { return w.grams / weightFactors[Microgram] }
func (w Weight) Milligrams() float64 { return w.grams / weightFactors[Milligram] }
func (w Weight) Grams() float64      { return w.grams }
func (w Weight) Kilograms() float64  { return w.grams / weightFactors[Kilogram] }
func (w Weight) Tons() float64       { return w.grams / weightFactors[Ton] }
func (w Weight) Pounds() float64     { return w.grams / weightFactors[Pound] }
func (w Weight) Ounces() float64     { return w.grams / weightFactors[Ounce] }
func (w Weight) Stones() float64     { return w.grams / weightFactors[Stone] }
func (w Weight) LongTons() float64   { return w.grams / weightFactors[LongTon] }
func (w Weight) ShortTons() float64  { return w.grams / weightFactors[ShortTon] }
func (w Weight) Carats() float64     { return w.grams / weightFactors[Carat] }

// In returns the weight expressed in the given unit.
func (w Weight) In(unit WeightUnit) (float64, error) {
	factor, ok := weightFactors[unit]
	if !ok {
		return 0, fault.InvalidUnitValue("weight", int(unit))
	}
	return w.grams / factor, nil
}

// IsZero returns true if the weight is zero.
func (w Weight) IsZero() bool {
	return w.grams == 0
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{grams: clampNonNegative(w.grams + other.grams)}
}

// Sub returns the difference of two weights, clamped at zero.
func (w Weight) Sub(other Weight) Weight {
	return Weight{grams: clampNonNegative(w.grams - other.grams)}
}

// Equals checks exact equality of the canonical values.
func (w Weight) Equals(other Weight) bool {
	return w.grams == other.grams
}

// Compare orders two weights by canonical value.
func (w Weight) Compare(other Weight) int {
	return compareValues(w.grams, other.grams)
}

// String renders the canonical value and symbol, e.g. "2453.59237 g".
func (w Weight) String() string {
	return formatValue(w.grams) + " " + weightWireSymbol
}

// Format renders the weight in the unit named by format, which may be
// any accepted unit alias.
func (w Weight) Format(format string) (string, error) {
	unit, err := ParseWeightUnit(format)
	if err != nil {
		return "", fault.Format(format)
	}
	symbol, _ := unit.Symbol()
	value, _ := w.In(unit)
	return formatValue(value) + " " + symbol, nil
}

// MarshalJSON always writes the canonical unit, regardless of the
// unit the weight was constructed in.
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: w.grams, Unit: weightWireSymbol})
}

// UnmarshalJSON implements json.Unmarshaler with default options.
func (w *Weight) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeWeight(data, DefaultDecodeOptions())
	if err != nil {
		return err
	}
	*w = decoded
	return nil
}

// DecodeWeight reads a {value, unit} object using the given options.
// A missing unit defaults to grams, a missing value to 0.
func DecodeWeight(data []byte, opts DecodeOptions) (Weight, error) {
	payload, err := decodeQuantityObject(data, opts)
	if err != nil {
		return Weight{}, err
	}
	unit := Gram
	if payload.hasUnit {
		if unit, err = ParseWeightUnit(payload.unit); err != nil {
			return Weight{}, err
		}
	}
	return NewWeight(payload.value, unit)
}
