package measure

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/logistics-platform/libs/go/measures/fault"
)

// NamingPolicy transforms the logical property names "value" and
// "unit" into the names expected on the wire, mirroring whatever
// naming convention the surrounding document uses.
type NamingPolicy func(name string) string

// DecodeOptions control how a quantity object is read. The zero value
// means: literal property names, matched case-insensitively.
type DecodeOptions struct {
	NamingPolicy  NamingPolicy
	CaseSensitive bool
}

// DefaultDecodeOptions returns the options used by UnmarshalJSON.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

// quantityJSON is the wire shape of every quantity. Writes always emit
// value first, then the canonical wire unit.
type quantityJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// quantityPayload is the tolerant-read counterpart: either property
// may be absent, in which case the caller applies its defaults
// (value 0, canonical unit).
type quantityPayload struct {
	value    float64
	unit     string
	hasValue bool
	hasUnit  bool
}

// decodeQuantityObject walks the object token by token so that
// structural violations surface as MALFORMED_PAYLOAD: a non-object
// start, an unknown property, a wrongly typed property value, or
// input that ends before the object closes.
func decodeQuantityObject(data []byte, opts DecodeOptions) (quantityPayload, error) {
	var p quantityPayload

	policy := opts.NamingPolicy
	if policy == nil {
		policy = func(name string) string { return name }
	}
	valueName := policy("value")
	unitName := policy("unit")

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return p, fault.MalformedPayload("unexpected end of input").WithCause(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return p, fault.MalformedPayload("expected start of object")
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return p, fault.MalformedPayload("unexpected end of input").WithCause(err)
		}
		name, ok := tok.(string)
		if !ok {
			return p, fault.MalformedPayload("expected property name")
		}
		switch {
		case propertyMatches(name, valueName, opts.CaseSensitive):
			tok, err = dec.Token()
			if err != nil {
				return p, fault.MalformedPayload("unexpected end of input").WithCause(err)
			}
			num, ok := tok.(json.Number)
			if !ok {
				return p, fault.MalformedPayload("property " + name + " must be a number")
			}
			v, err := num.Float64()
			if err != nil {
				return p, fault.MalformedPayload("property " + name + " must be a number").WithCause(err)
			}
			p.value, p.hasValue = v, true
		case propertyMatches(name, unitName, opts.CaseSensitive):
			tok, err = dec.Token()
			if err != nil {
				return p, fault.MalformedPayload("unexpected end of input").WithCause(err)
			}
			s, ok := tok.(string)
			if !ok {
				return p, fault.MalformedPayload("property " + name + " must be a string")
			}
			p.unit, p.hasUnit = s, true
		default:
			return p, fault.MalformedPayload("unknown property " + name)
		}
	}

	// Consume the closing brace; a truncated document fails here.
	if _, err = dec.Token(); err != nil {
		return p, fault.MalformedPayload("unexpected end of input").WithCause(err)
	}
	return p, nil
}

func propertyMatches(name, want string, caseSensitive bool) bool {
	if caseSensitive {
		return name == want
	}
	return strings.EqualFold(name, want)
}
