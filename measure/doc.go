// Package measure provides unit-of-measurement value types with
// built-in conversion arithmetic and JSON serialization.
//
// Each quantity stores a single canonical scalar and derives every
// other unit view on demand:
//
//   - Distance: stored in meters
//   - Weight: stored in grams
//   - Volume: stored in cubic meters
//   - Temperature: stored in kelvin
//
// A canonical value is never negative: any construction or arithmetic
// result that would go below zero is clamped to exactly 0 rather than
// rejected. Equality, ordering, and hashing operate on the canonical
// float64 only and are exact; a value converted through another unit
// and back may differ by floating-point epsilon, and the library does
// not paper over that with tolerance comparisons.
//
// All types implement json.Marshaler and json.Unmarshaler. The wire
// shape is a two-property object, value first:
//
//	{"value": 1000, "unit": "m"}
//
// Reads are tolerant (any supported unit tag, policy-driven property
// names via DecodeOptions); writes always normalize to the canonical
// unit, so a Distance constructed in feet serializes as meters.
//
// Example usage:
//
//	d := measure.Kilometers(1).Sub(measure.Meters(2))
//	d.Meters() // 998
//
//	w := measure.Pounds(1).Add(measure.Kilograms(2))
//	w.Grams() // 2453.59237
package measure
