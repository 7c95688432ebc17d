package measure

import (
	"encoding/json"
	"fmt"

	"github.com/logistics-platform/libs/go/measures/fault"
)

// TemperatureUnit is a closed enum of supported temperature units.
type TemperatureUnit int

// Supported temperature units.
const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
)

// temperatureWireSymbol is the unit tag every Temperature serializes
// with. Always lowercase "k" on the wire, while the display symbol is
// uppercase "K".
const temperatureWireSymbol = "k"

// Affine conversion constants.
const (
	celsiusOffset    = 273.15
	fahrenheitOffset = 459.67
)

// temperatureSymbols maps each unit to its display symbol. Celsius and
// Fahrenheit carry a leading degree sign; Kelvin does not.
var temperatureSymbols = map[TemperatureUnit]string{
	Kelvin:     "K",
	Celsius:    "°C",
	Fahrenheit: "°F",
}

// temperatureUnitAliases lists the accepted spellings per unit.
// Temperature aliases contain no multi-word forms, so matching strips
// a decorative degree sign instead of internal spaces and accepts the
// bare first-letter shorthand.
var temperatureUnitAliases = map[TemperatureUnit][]string{
	Kelvin:     {"k", "kelvin", "kelvins"},
	Celsius:    {"c", "celsius", "centigrade"},
	Fahrenheit: {"f", "fahrenheit"},
}

var temperatureAliasIndex = buildAliasIndex("temperature", temperatureUnitAliases, normalizeTemperatureUnit)

// ParseTemperatureUnit resolves a lenient unit string to its enumerator.
func ParseTemperatureUnit(text string) (TemperatureUnit, error) {
	if u, ok := temperatureAliasIndex[normalizeTemperatureUnit(text)]; ok {
		return u, nil
	}
	return 0, fault.InvalidUnit(text)
}

// IsValidTemperatureUnitString reports whether text parses to a
// temperature unit.
func IsValidTemperatureUnitString(text string) bool {
	_, ok := temperatureAliasIndex[normalizeTemperatureUnit(text)]
	return ok
}

// Symbol returns the display symbol for the unit.
func (u TemperatureUnit) Symbol() (string, error) {
	if s, ok := temperatureSymbols[u]; ok {
		return s, nil
	}
	return "", fault.InvalidUnitValue("temperature", int(u))
}

// String implements fmt.Stringer.
func (u TemperatureUnit) String() string {
	if s, ok := temperatureSymbols[u]; ok {
		return s
	}
	return fmt.Sprintf("TemperatureUnit(%d)", int(u))
}

// Temperature is a thermodynamic temperature stored canonically in
// kelvin. The absolute-zero floor doubles as the non-negativity clamp:
// a construction below 0 K clamps to exactly 0.
type Temperature struct {
	kelvin float64
}

// NewTemperature creates a Temperature from a value in the given unit,
// normalizing to kelvin immediately.
func NewTemperature(value float64, unit TemperatureUnit) (Temperature, error) {
	switch unit {
	case Kelvin:
		return Temperature{kelvin: clampNonNegative(value)}, nil
	case Celsius:
		return Temperature{kelvin: clampNonNegative(value + celsiusOffset)}, nil
	case Fahrenheit:
		return Temperature{kelvin: clampNonNegative((value + fahrenheitOffset) * 5 / 9)}, nil
	default:
		return Temperature{}, fault.InvalidUnitValue("temperature", int(unit))
	}
}

// TemperatureFromKelvin creates a Temperature from kelvin.
func TemperatureFromKelvin(v float64) Temperature {
	return Temperature{kelvin: clampNonNegative(v)}
}

// TemperatureFromCelsius creates a Temperature from degrees Celsius.
func TemperatureFromCelsius(v float64) Temperature {
	return Temperature{kelvin: clampNonNegative(v + celsiusOffset)}
}

// TemperatureFromFahrenheit creates a Temperature from degrees Fahrenheit.
func TemperatureFromFahrenheit(v float64) Temperature {
	return Temperature{kelvin: clampNonNegative((v + fahrenheitOffset) * 5 / 9)}
}

// Per-unit views, derived from the canonical value on demand.

func (t Temperature) Kelvin() float64     { return t.kelvin }
func (t Temperature) Celsius() float64    { return t.kelvin - celsiusOffset }
func (t Temperature) Fahrenheit() float64 { return t.kelvin*9/5 - fahrenheitOffset }

// In returns the temperature expressed in the given unit.
func (t Temperature) In(unit TemperatureUnit) (float64, error) {
	switch unit {
	case Kelvin:
		return t.Kelvin(), nil
	case Celsius:
		return t.Celsius(), nil
	case Fahrenheit:
		return t.Fahrenheit(), nil
	default:
		return 0, fault.InvalidUnitValue("temperature", int(unit))
	}
}

// IsZero returns true at absolute zero.
func (t Temperature) IsZero() bool {
	return t.kelvin == 0
}

// Add returns the sum of two temperatures in kelvin.
func (t Temperature) Add(other Temperature) Temperature {
	return Temperature{kelvin: clampNonNegative(t.kelvin + other.kelvin)}
}

// Sub returns the difference of two temperatures, clamped at 0 K.
func (t Temperature) Sub(other Temperature) Temperature {
	return Temperature{kelvin: clampNonNegative(t.kelvin - other.kelvin)}
}

// Equals checks exact equality of the canonical values.
func (t Temperature) Equals(other Temperature) bool {
	return t.kelvin == other.kelvin
}

// Compare orders two temperatures by canonical value.
func (t Temperature) Compare(other Temperature) int {
	return compareValues(t.kelvin, other.kelvin)
}

// String renders the canonical value and display symbol, e.g. "273.15 K".
func (t Temperature) String() string {
	return formatValue(t.kelvin) + " " + temperatureSymbols[Kelvin]
}

// Format renders the temperature in the unit named by format. Celsius
// and Fahrenheit render with their degree-sign symbols.
func (t Temperature) Format(format string) (string, error) {
	unit, err := ParseTemperatureUnit(format)
	if err != nil {
		return "", fault.Format(format)
	}
	symbol, _ := unit.Symbol()
	value, _ := t.In(unit)
	return formatValue(value) + " " + symbol, nil
}

// MarshalJSON always writes the canonical kelvin value with the
// lowercase wire unit "k".
func (t Temperature) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: t.kelvin, Unit: temperatureWireSymbol})
}

// UnmarshalJSON implements json.Unmarshaler with default options.
func (t *Temperature) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeTemperature(data, DefaultDecodeOptions())
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}

// DecodeTemperature reads a {value, unit} object using the given
// options. A missing unit defaults to kelvin, a missing value to 0.
func DecodeTemperature(data []byte, opts DecodeOptions) (Temperature, error) {
	payload, err := decodeQuantityObject(data, opts)
	if err != nil {
		return Temperature{}, err
	}
	unit := Kelvin
	if payload.hasUnit {
		if unit, err = ParseTemperatureUnit(payload.unit); err != nil {
			return Temperature{}, err
		}
	}
	return NewTemperature(payload.value, unit)
}
