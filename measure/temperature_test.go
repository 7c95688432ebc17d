package measure_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/logistics-platform/libs/go/measures/fault"
	"github.com/logistics-platform/libs/go/measures/measure"
)

func TestTemperatureConversions(t *testing.T) {
	t.Run("freezing point", func(t *testing.T) {
		freezing := measure.TemperatureFromCelsius(0)
		if got := freezing.Kelvin(); got != 273.15 {
			t.Fatalf("expected 273.15 K, got %v", got)
		}
		if got := freezing.Fahrenheit(); math.Abs(got-32) > 1e-9 {
			t.Fatalf("expected 32 °F, got %v", got)
		}
	})

	t.Run("fahrenheit round-trip", func(t *testing.T) {
		body := measure.TemperatureFromFahrenheit(98.6)
		if got := body.Celsius(); math.Abs(got-37) > 1e-9 {
			t.Fatalf("expected 37 °C, got %v", got)
		}
	})

	t.Run("absolute zero", func(t *testing.T) {
		zero := measure.TemperatureFromCelsius(-273.15)
		if !zero.IsZero() {
			t.Fatalf("expected 0 K, got %v", zero.Kelvin())
		}
	})
}

func TestTemperatureClampsAtAbsoluteZero(t *testing.T) {
	if !measure.TemperatureFromKelvin(-10).IsZero() {
		t.Fatal("negative kelvin should clamp to 0")
	}
	if !measure.TemperatureFromCelsius(-300).IsZero() {
		t.Fatal("below absolute zero should clamp to 0 K")
	}
	if !measure.TemperatureFromKelvin(10).Sub(measure.TemperatureFromKelvin(20)).IsZero() {
		t.Fatal("subtraction past absolute zero should clamp")
	}
}

func TestParseTemperatureUnitAliases(t *testing.T) {
	cases := []struct {
		text string
		unit measure.TemperatureUnit
	}{
		{"K", measure.Kelvin},
		{"Kelvins", measure.Kelvin},
		{"c", measure.Celsius},
		{"°C", measure.Celsius},
		{"CENTIGRADE", measure.Celsius},
		{"℃", measure.Celsius}, // single-codepoint degree sign folds under NFKC
		{"°F", measure.Fahrenheit},
		{"fahrenheit", measure.Fahrenheit},
	}
	for _, tc := range cases {
		u, err := measure.ParseTemperatureUnit(tc.text)
		if err != nil {
			t.Fatalf("%q should parse: %v", tc.text, err)
		}
		if u != tc.unit {
			t.Fatalf("%q parsed to %v, want %v", tc.text, u, tc.unit)
		}
	}

	if _, err := measure.ParseTemperatureUnit("rankine"); !fault.IsCode(err, fault.ErrCodeInvalidUnit) {
		t.Fatalf("unknown unit should fail with INVALID_UNIT, got %v", err)
	}
}

func TestTemperatureFormat(t *testing.T) {
	freezing := measure.TemperatureFromCelsius(0)

	s, err := freezing.Format("C")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if s != "0 °C" {
		t.Fatalf("expected \"0 °C\", got %q", s)
	}

	s, err = freezing.Format("fahrenheit")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if !strings.HasSuffix(s, " °F") {
		t.Fatalf("expected °F suffix, got %q", s)
	}

	if got := freezing.String(); got != "273.15 K" {
		t.Fatalf("expected \"273.15 K\", got %q", got)
	}

	if _, err := freezing.Format("rankine"); !fault.IsCode(err, fault.ErrCodeFormat) {
		t.Fatalf("invalid format string should fail with FORMAT_ERROR, got %v", err)
	}
}

func TestTemperatureJSONWireUnit(t *testing.T) {
	data, err := json.Marshal(measure.TemperatureFromCelsius(0))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"value":273.15,"unit":"k"}` {
		t.Fatalf("unexpected wire form: %s", data)
	}

	var restored measure.Temperature
	if err := json.Unmarshal([]byte(`{"value":100,"unit":"°C"}`), &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := restored.Kelvin(); got != 373.15 {
		t.Fatalf("expected 373.15 K, got %v", got)
	}
}

func TestTemperatureOrdering(t *testing.T) {
	cold := measure.TemperatureFromCelsius(-40)
	warm := measure.TemperatureFromFahrenheit(70)
	if cold.Compare(warm) != -1 {
		t.Fatal("-40 °C should order before 70 °F")
	}
	diff := cold.Kelvin() - measure.TemperatureFromFahrenheit(-40).Kelvin()
	if math.Abs(diff) > 1e-9 {
		t.Fatalf("-40 °C should coincide with -40 °F, diverged by %v K", diff)
	}
}
