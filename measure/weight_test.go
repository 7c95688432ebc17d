package measure_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/logistics-platform/libs/go/measures/fault"
	"github.com/logistics-platform/libs/go/measures/measure"
)

func TestWeightConversionConstants(t *testing.T) {
	cases := []struct {
		name  string
		w     measure.Weight
		grams float64
	}{
		{"microgram", measure.Micrograms(1), 0.000001},
		{"milligram", measure.Milligrams(1), 0.001},
		{"gram", measure.Grams(1), 1},
		{"kilogram", measure.Kilograms(1), 1000},
		{"ton", measure.Tons(1), 1000000},
		{"pound", measure.Pounds(1), 453.59237},
		{"ounce", measure.Ounces(1), 28.349523125},
		{"stone", measure.Stones(1), 6350.29318},
		{"long ton", measure.LongTons(1), 1016046.9088},
		{"short ton", measure.ShortTons(1), 907184.74},
		{"carat", measure.Carats(1), 0.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.w.Grams(); got != tc.grams {
				t.Fatalf("expected %v g, got %v", tc.grams, got)
			}
		})
	}
}

func TestWeightMixedUnitSum(t *testing.T) {
	sum := measure.Pounds(1).Add(measure.Kilograms(2))
	expected := measure.Pounds(1).Grams() + measure.Kilograms(2).Grams()
	if got := sum.Grams(); got != expected {
		t.Fatalf("expected %v g, got %v", expected, got)
	}
	if math.Abs(sum.Grams()-2453.59237) > 1e-9 {
		t.Fatalf("expected ~2453.59237 g, got %v", sum.Grams())
	}
}

func TestWeightClamp(t *testing.T) {
	if got := measure.Kilograms(-3).Grams(); got != 0 {
		t.Fatalf("negative input should clamp to 0, got %v", got)
	}
	diff := measure.Grams(100).Sub(measure.Kilograms(1))
	if !diff.IsZero() {
		t.Fatalf("expected 0 g, got %v", diff.Grams())
	}
}

func TestParseWeightUnitAliases(t *testing.T) {
	cases := []struct {
		text string
		unit measure.WeightUnit
	}{
		{"µg", measure.Microgram},   // micro sign U+00B5
		{"μg", measure.Microgram},   // greek mu U+03BC
		{"mcg", measure.Microgram},
		{"st.", measure.Stone},
		{"Stones", measure.Stone},
		{"LBS", measure.Pound},
		{"long ton", measure.LongTon},
		{"LONG TONS", measure.LongTon},
		{"short tn", measure.ShortTon},
		{"tonne", measure.Ton},
		{"Carats", measure.Carat},
	}
	for _, tc := range cases {
		u, err := measure.ParseWeightUnit(tc.text)
		if err != nil {
			t.Fatalf("%q should parse: %v", tc.text, err)
		}
		if u != tc.unit {
			t.Fatalf("%q parsed to %v, want %v", tc.text, u, tc.unit)
		}
	}

	if _, err := measure.ParseWeightUnit("slug"); !fault.IsCode(err, fault.ErrCodeInvalidUnit) {
		t.Fatalf("unknown unit should fail with INVALID_UNIT, got %v", err)
	}
}

func TestWeightFormat(t *testing.T) {
	w := measure.Grams(6350.29318)
	s, err := w.Format("stone")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if s != "1 st." {
		t.Fatalf("expected \"1 st.\", got %q", s)
	}

	if _, err := w.Format("bogus"); !fault.IsCode(err, fault.ErrCodeFormat) {
		t.Fatalf("invalid format string should fail with FORMAT_ERROR, got %v", err)
	}
}

func TestWeightJSONCanonicalWrite(t *testing.T) {
	data, err := json.Marshal(measure.Kilograms(1))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"value":1000,"unit":"g"}` {
		t.Fatalf("unexpected wire form: %s", data)
	}

	var restored measure.Weight
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !restored.Equals(measure.Kilograms(1)) {
		t.Fatalf("round-trip failed: %v", restored)
	}
}

func TestWeightJSONReadsAnyUnit(t *testing.T) {
	var w measure.Weight
	if err := json.Unmarshal([]byte(`{"value":2,"unit":"Pounds"}`), &w); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := w.Grams(); got != measure.Pounds(2).Grams() {
		t.Fatalf("expected %v g, got %v", measure.Pounds(2).Grams(), got)
	}
}
