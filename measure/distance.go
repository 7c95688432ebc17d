package measure

import (
	"encoding/json"
	"fmt"

	"github.com/logistics-platform/libs/go/measures/fault"
)

// DistanceUnit is a closed enum of supported distance units.
type DistanceUnit int

// Supported distance units.
const (
	Millimeter DistanceUnit = iota
	Centimeter
	Meter
	Kilometer
	Inch
	Foot
	Yard
	Mile
	NauticalMile
)

// distanceWireSymbol is the unit tag every Distance serializes with.
const distanceWireSymbol = "m"

// distanceFactors maps each unit to its size in meters.
var distanceFactors = map[DistanceUnit]float64{
	Millimeter:   0.001,
	Centimeter:   0.01,
	Meter:        1,
	Kilometer:    1000,
	Inch:         0.0254,
	Foot:         0.3048,
	Yard:         0.9144,
	Mile:         1609.34,
	NauticalMile: 1852,
}

// distanceSymbols maps each unit to its canonical short symbol.
var distanceSymbols = map[DistanceUnit]string{
	Millimeter:   "mm",
	Centimeter:   "cm",
	Meter:        "m",
	Kilometer:    "km",
	Inch:         "in",
	Foot:         "ft",
	Yard:         "yd",
	Mile:         "mi",
	NauticalMile: "nmi",
}

// distanceUnitAliases lists the accepted spellings per unit. Matching
// is case-, spacing-, and compatibility-form-insensitive.
var distanceUnitAliases = map[DistanceUnit][]string{
	Millimeter:   {"mm", "millimeter", "millimeters", "millimetre", "millimetres"},
	Centimeter:   {"cm", "centimeter", "centimeters", "centimetre", "centimetres"},
	Meter:        {"m", "meter", "meters", "metre", "metres"},
	Kilometer:    {"km", "kilometer", "kilometers", "kilometre", "kilometres"},
	Inch:         {"in", "inch", "inches"},
	Foot:         {"ft", "foot", "feet"},
	Yard:         {"yd", "yard", "yards"},
	Mile:         {"mi", "mile", "miles"},
	NauticalMile: {"nmi", "nautical mile", "nautical miles"},
}

var distanceAliasIndex = buildAliasIndex("distance", distanceUnitAliases, normalizeCompactUnit)

// ParseDistanceUnit resolves a lenient unit string to its enumerator.
func ParseDistanceUnit(text string) (DistanceUnit, error) {
	if u, ok := distanceAliasIndex[normalizeCompactUnit(text)]; ok {
		return u, nil
	}
	return 0, fault.InvalidUnit(text)
}

// IsValidDistanceUnitString reports whether text parses to a distance unit.
func IsValidDistanceUnitString(text string) bool {
	_, ok := distanceAliasIndex[normalizeCompactUnit(text)]
	return ok
}

// Symbol returns the canonical short symbol for the unit. An
// out-of-range enumerator (cast from an arbitrary integer) fails with
// an invalid-unit error.
func (u DistanceUnit) Symbol() (string, error) {
	if s, ok := distanceSymbols[u]; ok {
		return s, nil
	}
	return "", fault.InvalidUnitValue("distance", int(u))
}

// String implements fmt.Stringer.
func (u DistanceUnit) String() string {
	if s, ok := distanceSymbols[u]; ok {
		return s
	}
	return fmt.Sprintf("DistanceUnit(%d)", int(u))
}

// Distance is a length stored canonically in meters.
type Distance struct {
	meters float64
}

// NewDistance creates a Distance from a value in the given unit,
// normalizing to meters immediately. Negative inputs clamp to zero.
func NewDistance(value float64, unit DistanceUnit) (Distance, error) {
	factor, ok := distanceFactors[unit]
	if !ok {
		return Distance{}, fault.InvalidUnitValue("distance", int(unit))
	}
	return Distance{meters: clampNonNegative(value * factor)}, nil
}

// Named factories per unit.

func Millimeters(v float64) Distance   { return distanceIn(v, Millimeter) }
func Centimeters(v float64) Distance   { return distanceIn(v, Centimeter) }
func Meters(v float64) Distance        { return distanceIn(v, Meter) }
func Kilometers(v float64) Distance    { return distanceIn(v, Kilometer) }
func Inches(v float64) Distance        { return distanceIn(v, Inch) }
func Feet(v float64) Distance          { return distanceIn(v, Foot) }
func Yards(v float64) Distance         { return distanceIn(v, Yard) }
func Miles(v float64) Distance         { return distanceIn(v, Mile) }
func NauticalMiles(v float64) Distance { return distanceIn(v, NauticalMile) }

func distanceIn(v float64, unit DistanceUnit) Distance {
	return Distance{meters: clampNonNegative(v * distanceFactors[unit])}
}

// Per-unit views, derived from the canonical value on demand.

func (d Distance) Millimeters() float64   { return d.meters / distanceFactors[Millimeter] }
func (d Distance) Centimeters() float64   { return d.meters / distanceFactors[Centimeter] }
func (d Distance) Meters() float64        { return d.meters }
func (d Distance) Kilometers() float64    { return d.meters / distanceFactors[Kilometer] }
func (d Distance) Inches() float64        { return d.meters / distanceFactors[Inch] }
func (d Distance) Feet() float64          { return d.meters / distanceFactors[Foot] }
func (d Distance) Yards() float64         { return d.meters / distanceFactors[Yard] }
func (d Distance) Miles() float64         { return d.meters / distanceFactors[Mile] }
func (d Distance) NauticalMiles() float64 { return d.meters / distanceFactors[NauticalMile] }

// In returns the distance expressed in the given unit.
func (d Distance) In(unit DistanceUnit) (float64, error) {
	factor, ok := distanceFactors[unit]
	if !ok {
		return 0, fault.InvalidUnitValue("distance", int(unit))
	}
	return d.meters / factor, nil
}

// IsZero returns true if the distance is zero.
func (d Distance) IsZero() bool {
	return d.meters == 0
}

// Add returns the sum of two distances.
func (d Distance) Add(other Distance) Distance {
	return Distance{meters: clampNonNegative(d.meters + other.meters)}
}

// Sub returns the difference of two distances, clamped at zero.
func (d Distance) Sub(other Distance) Distance {
	return Distance{meters: clampNonNegative(d.meters - other.meters)}
}

// Equals checks exact equality of the canonical values.
func (d Distance) Equals(other Distance) bool {
	return d.meters == other.meters
}

// Compare orders two distances by canonical value.
func (d Distance) Compare(other Distance) int {
	return compareValues(d.meters, other.meters)
}

// String renders the canonical value and symbol, e.g. "998 m".
func (d Distance) String() string {
	return formatValue(d.meters) + " " + distanceWireSymbol
}

// Format renders the distance in the unit named by format, which may
// be any accepted unit alias. An unrecognized format string fails with
// a format error rather than an invalid-unit error.
func (d Distance) Format(format string) (string, error) {
	unit, err := ParseDistanceUnit(format)
	if err != nil {
		return "", fault.Format(format)
	}
	symbol, _ := unit.Symbol()
	value, _ := d.In(unit)
	return formatValue(value) + " " + symbol, nil
}

// MarshalJSON always writes the canonical unit, regardless of the
// unit the distance was constructed in.
func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: d.meters, Unit: distanceWireSymbol})
}

// UnmarshalJSON implements json.Unmarshaler with default options.
func (d *Distance) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeDistance(data, DefaultDecodeOptions())
	if err != nil {
		return err
	}
	*d = decoded
	return nil
}

// DecodeDistance reads a {value, unit} object using the given options.
// A missing unit defaults to meters, a missing value to 0.
func DecodeDistance(data []byte, opts DecodeOptions) (Distance, error) {
	payload, err := decodeQuantityObject(data, opts)
	if err != nil {
		return Distance{}, err
	}
	unit := Meter
	if payload.hasUnit {
		if unit, err = ParseDistanceUnit(payload.unit); err != nil {
			return Distance{}, err
		}
	}
	return NewDistance(payload.value, unit)
}
