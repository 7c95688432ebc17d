package measure

import (
	"encoding/json"
	"fmt"

	"github.com/logistics-platform/libs/go/measures/fault"
)

// VolumeUnit is a closed enum of supported volume units.
type VolumeUnit int

// Supported volume units.
const (
	CubicMeter VolumeUnit = iota
	CubicFoot
	Liter
	Milliliter
	CubicCentimeter
	Gallon
)

// volumeWireSymbol is the unit tag every Volume serializes with. It is
// the ASCII "m3", not the display glyph "m³", so non-Unicode consumers
// can read the wire format.
const volumeWireSymbol = "m3"

// volumeFactors maps each unit to its size in cubic meters.
var volumeFactors = map[VolumeUnit]float64{
	CubicMeter:      1,
	CubicFoot:       0.0283168,
	Liter:           0.001,
	Milliliter:      0.000001,
	CubicCentimeter: 0.000001,
	Gallon:          0.00378541,
}

// volumeSymbols maps each unit to its canonical display symbol.
var volumeSymbols = map[VolumeUnit]string{
	CubicMeter:      "m³",
	CubicFoot:       "ft³",
	Liter:           "l",
	Milliliter:      "ml",
	CubicCentimeter: "cm³",
	Gallon:          "gal",
}

// volumeUnitAliases lists the accepted spellings per unit. Superscript
// digits fold to plain digits under NFKC, so "m³" matches "m3".
var volumeUnitAliases = map[VolumeUnit][]string{
	CubicMeter:      {"m3", "cubic meter", "cubic meters", "cubic metre", "cubic metres"},
	CubicFoot:       {"ft3", "cubic foot", "cubic feet"},
	Liter:           {"l", "liter", "liters", "litre", "litres"},
	Milliliter:      {"ml", "milliliter", "milliliters", "millilitre", "millilitres"},
	CubicCentimeter: {"cm3", "cc", "cubic centimeter", "cubic centimeters", "cubic centimetre", "cubic centimetres"},
	Gallon:          {"gal", "gallon", "gallons"},
}

var volumeAliasIndex = buildAliasIndex("volume", volumeUnitAliases, normalizeCompactUnit)

// ParseVolumeUnit resolves a lenient unit string to its enumerator.
func ParseVolumeUnit(text string) (VolumeUnit, error) {
	if u, ok := volumeAliasIndex[normalizeCompactUnit(text)]; ok {
		return u, nil
	}
	return 0, fault.InvalidUnit(text)
}

// IsValidVolumeUnitString reports whether text parses to a volume unit.
func IsValidVolumeUnitString(text string) bool {
	_, ok := volumeAliasIndex[normalizeCompactUnit(text)]
	return ok
}

// Symbol returns the canonical display symbol for the unit.
func (u VolumeUnit) Symbol() (string, error) {
	if s, ok := volumeSymbols[u]; ok {
		return s, nil
	}
	return "", fault.InvalidUnitValue("volume", int(u))
}

// String implements fmt.Stringer.
func (u VolumeUnit) String() string {
	if s, ok := volumeSymbols[u]; ok {
		return s
	}
	return fmt.Sprintf("VolumeUnit(%d)", int(u))
}

// Volume is a spatial volume stored canonically in cubic meters.
type Volume struct {
	cubicMeters float64
}

// NewVolume creates a Volume from a value in the given unit,
// normalizing to cubic meters immediately. Negative inputs clamp to zero.
func NewVolume(value float64, unit VolumeUnit) (Volume, error) {
	factor, ok := volumeFactors[unit]
	if !ok {
		return Volume{}, fault.InvalidUnitValue("volume", int(unit))
	}
	return Volume{cubicMeters: clampNonNegative(value * factor)}, nil
}

// Named factories per unit.

func CubicMeters(v float64) Volume      { return volumeIn(v, CubicMeter) }
func CubicFeet(v float64) Volume        { return volumeIn(v, CubicFoot) }
func Liters(v float64) Volume           { return volumeIn(v, Liter) }
func Milliliters(v float64) Volume      { return volumeIn(v, Milliliter) }
func CubicCentimeters(v float64) Volume { return volumeIn(v, CubicCentimeter) }
func Gallons(v float64) Volume          { return volumeIn(v, Gallon) }

func volumeIn(v float64, unit VolumeUnit) Volume {
	return Volume{cubicMeters: clampNonNegative(v * volumeFactors[unit])}
}

// Per-unit views, derived from the canonical value on demand.

func (v Volume) CubicMeters() float64      { return v.cubicMeters }
func (v Volume) CubicFeet() float64        { return v.cubicMeters / volumeFactors[CubicFoot] }
func (v Volume) Liters() float64           { return v.cubicMeters / volumeFactors[Liter] }
func (v Volume) Milliliters() float64      { return v.cubicMeters / volumeFactors[Milliliter] }
func (v Volume) CubicCentimeters() float64 { return v.cubicMeters / volumeFactors[CubicCentimeter] }
func (v Volume) Gallons() float64          { return v.cubicMeters / volumeFactors[Gallon] }

// In returns the volume expressed in the given unit.
func (v Volume) In(unit VolumeUnit) (float64, error) {
	factor, ok := volumeFactors[unit]
	if !ok {
		return 0, fault.InvalidUnitValue("volume", int(unit))
	}
	return v.cubicMeters / factor, nil
}

// IsZero returns true if the volume is zero.
func (v Volume) IsZero() bool {
	return v.cubicMeters == 0
}

// Add returns the sum of two volumes.
func (v Volume) Add(other Volume) Volume {
	return Volume{cubicMeters: clampNonNegative(v.cubicMeters + other.cubicMeters)}
}

// Sub returns the difference of two volumes, clamped at zero.
func (v Volume) Sub(other Volume) Volume {
	return Volume{cubicMeters: clampNonNegative(v.cubicMeters - other.cubicMeters)}
}

// Equals checks exact equality of the canonical values.
func (v Volume) Equals(other Volume) bool {
	return v.cubicMeters == other.cubicMeters
}

// Compare orders two volumes by canonical value.
func (v Volume) Compare(other Volume) int {
	return compareValues(v.cubicMeters, other.cubicMeters)
}

// String renders the canonical value and display symbol, e.g. "1 m³".
func (v Volume) String() string {
	return formatValue(v.cubicMeters) + " " + volumeSymbols[CubicMeter]
}

// Format renders the volume in the unit named by format, which may be
// any accepted unit alias.
func (v Volume) Format(format string) (string, error) {
	unit, err := ParseVolumeUnit(format)
	if err != nil {
		return "", fault.Format(format)
	}
	symbol, _ := unit.Symbol()
	value, _ := v.In(unit)
	return formatValue(value) + " " + symbol, nil
}

// MarshalJSON always writes the ASCII canonical unit "m3", regardless
// of the unit the volume was constructed in.
func (v Volume) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: v.cubicMeters, Unit: volumeWireSymbol})
}

// UnmarshalJSON implements json.Unmarshaler with default options.
func (v *Volume) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeVolume(data, DefaultDecodeOptions())
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// DecodeVolume reads a {value, unit} object using the given options.
// A missing unit defaults to cubic meters, a missing value to 0.
func DecodeVolume(data []byte, opts DecodeOptions) (Volume, error) {
	payload, err := decodeQuantityObject(data, opts)
	if err != nil {
		return Volume{}, err
	}
	unit := CubicMeter
	if payload.hasUnit {
		if unit, err = ParseVolumeUnit(payload.unit); err != nil {
			return Volume{}, err
		}
	}
	return NewVolume(payload.value, unit)
}
