// Package measuretest provides rapid generators for the measurement
// and response value types.
package measuretest

import (
	"pgregory.net/rapid"

	"github.com/logistics-platform/libs/go/measures/measure"
	"github.com/logistics-platform/libs/go/measures/response"
)

// DistanceUnits lists every distance unit for sampling.
var DistanceUnits = []measure.DistanceUnit{
	measure.Millimeter, measure.Centimeter, measure.Meter, measure.Kilometer,
	measure.Inch, measure.Foot, measure.Yard, measure.Mile, measure.NauticalMile,
}

// WeightUnits lists every weight unit for sampling.
var WeightUnits = []measure.WeightUnit{
	measure.Microgram, measure.Milligram, measure.Gram, measure.Kilogram,
	measure.Ton, measure.Pound, measure.Ounce, measure.Stone,
	measure.LongTon, measure.ShortTon, measure.Carat,
}

// VolumeUnits lists every volume unit for sampling.
var VolumeUnits = []measure.VolumeUnit{
	measure.CubicMeter, measure.CubicFoot, measure.Liter,
	measure.Milliliter, measure.CubicCentimeter, measure.Gallon,
}

// TemperatureUnits lists every temperature unit for sampling.
var TemperatureUnits = []measure.TemperatureUnit{
	measure.Kelvin, measure.Celsius, measure.Fahrenheit,
}

// ScalarGen generates non-negative magnitudes in a range that keeps
// conversions comfortably inside float64 precision.
func ScalarGen() *rapid.Generator[float64] {
	return rapid.Float64Range(0, 1e9)
}

// DistanceUnitGen samples a distance unit.
func DistanceUnitGen() *rapid.Generator[measure.DistanceUnit] {
	return rapid.SampledFrom(DistanceUnits)
}

// WeightUnitGen samples a weight unit.
func WeightUnitGen() *rapid.Generator[measure.WeightUnit] {
	return rapid.SampledFrom(WeightUnits)
}

// VolumeUnitGen samples a volume unit.
func VolumeUnitGen() *rapid.Generator[measure.VolumeUnit] {
	return rapid.SampledFrom(VolumeUnits)
}

// TemperatureUnitGen samples a temperature unit.
func TemperatureUnitGen() *rapid.Generator[measure.TemperatureUnit] {
	return rapid.SampledFrom(TemperatureUnits)
}

// DistanceGen generates distances constructed from arbitrary units.
func DistanceGen() *rapid.Generator[measure.Distance] {
	return rapid.Custom(func(t *rapid.T) measure.Distance {
		d, _ := measure.NewDistance(ScalarGen().Draw(t, "value"), DistanceUnitGen().Draw(t, "unit"))
		return d
	})
}

// WeightGen generates weights constructed from arbitrary units.
func WeightGen() *rapid.Generator[measure.Weight] {
	return rapid.Custom(func(t *rapid.T) measure.Weight {
		w, _ := measure.NewWeight(ScalarGen().Draw(t, "value"), WeightUnitGen().Draw(t, "unit"))
		return w
	})
}

// VolumeGen generates volumes constructed from arbitrary units.
func VolumeGen() *rapid.Generator[measure.Volume] {
	return rapid.Custom(func(t *rapid.T) measure.Volume {
		v, _ := measure.NewVolume(ScalarGen().Draw(t, "value"), VolumeUnitGen().Draw(t, "unit"))
		return v
	})
}

// TemperatureGen generates temperatures constructed from arbitrary units.
func TemperatureGen() *rapid.Generator[measure.Temperature] {
	return rapid.Custom(func(t *rapid.T) measure.Temperature {
		temp, _ := measure.NewTemperature(rapid.Float64Range(-500, 1e6).Draw(t, "value"), TemperatureUnitGen().Draw(t, "unit"))
		return temp
	})
}

// SuccessStatusGen samples a 2xx status code.
func SuccessStatusGen() *rapid.Generator[int] {
	return rapid.IntRange(200, 299)
}

// ErrorStatusGen samples a valid non-2xx status code.
func ErrorStatusGen() *rapid.Generator[int] {
	return rapid.OneOf(rapid.IntRange(100, 199), rapid.IntRange(300, 599))
}

// ResponseGen generates well-formed responses of either variant.
func ResponseGen() *rapid.Generator[response.Response] {
	return rapid.Custom(func(t *rapid.T) response.Response {
		if rapid.Bool().Draw(t, "isSuccess") {
			r, _ := response.Success(SuccessStatusGen().Draw(t, "statusCode"))
			return r
		}
		r, _ := response.Error(
			ErrorStatusGen().Draw(t, "statusCode"),
			rapid.StringMatching(`[a-z ]{0,30}`).Draw(t, "message"),
		)
		return r
	})
}
