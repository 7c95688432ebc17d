package measure_test

import (
	"encoding/json"
	"testing"

	"pgregory.net/rapid"

	"github.com/logistics-platform/libs/go/measures/measure"
	"github.com/logistics-platform/libs/go/measures/measuretest"
)

// wireQuantity mirrors the serialized shape for inspecting wire output.
type wireQuantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func TestDistanceJSONRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := measuretest.DistanceGen().Draw(t, "distance")
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var restored measure.Distance
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !restored.Equals(d) {
			t.Fatalf("round-trip changed value: %v != %v", restored, d)
		}
	})
}

func TestWeightJSONRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := measuretest.WeightGen().Draw(t, "weight")
		data, err := json.Marshal(w)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var restored measure.Weight
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !restored.Equals(w) {
			t.Fatalf("round-trip changed value: %v != %v", restored, w)
		}
	})
}

func TestVolumeJSONRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := measuretest.VolumeGen().Draw(t, "volume")
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var restored measure.Volume
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !restored.Equals(v) {
			t.Fatalf("round-trip changed value: %v != %v", restored, v)
		}
	})
}

func TestTemperatureJSONRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		temp := measuretest.TemperatureGen().Draw(t, "temperature")
		data, err := json.Marshal(temp)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var restored measure.Temperature
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !restored.Equals(temp) {
			t.Fatalf("round-trip changed value: %v != %v", restored, temp)
		}
	})
}

func TestWireUnitIsAlwaysCanonicalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		checks := []struct {
			payload any
			unit    string
		}{
			{measuretest.DistanceGen().Draw(t, "distance"), "m"},
			{measuretest.WeightGen().Draw(t, "weight"), "g"},
			{measuretest.VolumeGen().Draw(t, "volume"), "m3"},
			{measuretest.TemperatureGen().Draw(t, "temperature"), "k"},
		}
		for _, c := range checks {
			data, err := json.Marshal(c.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var wire wireQuantity
			if err := json.Unmarshal(data, &wire); err != nil {
				t.Fatalf("wire shape invalid: %v", err)
			}
			if wire.Unit != c.unit {
				t.Fatalf("expected wire unit %q, got %q", c.unit, wire.Unit)
			}
			if wire.Value < 0 {
				t.Fatalf("negative canonical value on the wire: %v", wire.Value)
			}
		}
	})
}

func TestDistanceNeverNegativeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := measuretest.DistanceGen().Draw(t, "a")
		b := measuretest.DistanceGen().Draw(t, "b")
		if a.Sub(b).Meters() < 0 {
			t.Fatalf("subtraction produced a negative distance: %v - %v", a, b)
		}
		value := rapid.Float64Range(-1e9, 0).Draw(t, "negative")
		d, err := measure.NewDistance(value, measuretest.DistanceUnitGen().Draw(t, "unit"))
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		if !d.IsZero() {
			t.Fatalf("negative input %v should clamp to zero, got %v", value, d)
		}
	})
}

func TestCompareAntisymmetryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := measuretest.WeightGen().Draw(t, "a")
		b := measuretest.WeightGen().Draw(t, "b")
		if a.Compare(b) != -b.Compare(a) {
			t.Fatalf("compare not antisymmetric for %v and %v", a, b)
		}
		if a.Compare(a) != 0 {
			t.Fatalf("compare not reflexive for %v", a)
		}
		if (a.Compare(b) == 0) != a.Equals(b) {
			t.Fatalf("compare and equals disagree for %v and %v", a, b)
		}
	})
}

func TestAdditionCommutesProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := measuretest.VolumeGen().Draw(t, "a")
		b := measuretest.VolumeGen().Draw(t, "b")
		if !a.Add(b).Equals(b.Add(a)) {
			t.Fatalf("addition not commutative for %v and %v", a, b)
		}
	})
}

func TestUnitSymbolsParseBack(t *testing.T) {
	for _, u := range measuretest.DistanceUnits {
		s, err := u.Symbol()
		if err != nil {
			t.Fatalf("symbol failed for %v: %v", u, err)
		}
		parsed, err := measure.ParseDistanceUnit(s)
		if err != nil || parsed != u {
			t.Fatalf("symbol %q did not parse back to %v", s, u)
		}
	}
	for _, u := range measuretest.WeightUnits {
		s, err := u.Symbol()
		if err != nil {
			t.Fatalf("symbol failed for %v: %v", u, err)
		}
		parsed, err := measure.ParseWeightUnit(s)
		if err != nil || parsed != u {
			t.Fatalf("symbol %q did not parse back to %v", s, u)
		}
	}
	for _, u := range measuretest.VolumeUnits {
		s, err := u.Symbol()
		if err != nil {
			t.Fatalf("symbol failed for %v: %v", u, err)
		}
		parsed, err := measure.ParseVolumeUnit(s)
		if err != nil || parsed != u {
			t.Fatalf("symbol %q did not parse back to %v", s, u)
		}
	}
	for _, u := range measuretest.TemperatureUnits {
		s, err := u.Symbol()
		if err != nil {
			t.Fatalf("symbol failed for %v: %v", u, err)
		}
		parsed, err := measure.ParseTemperatureUnit(s)
		if err != nil || parsed != u {
			t.Fatalf("symbol %q did not parse back to %v", s, u)
		}
	}
}
