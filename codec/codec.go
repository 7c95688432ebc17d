// Package codec provides unified encoding/decoding for the measures
// library, plus an explicit type-keyed registry that replaces
// reflection-built converter factories.
package codec

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/logistics-platform/libs/go/measures/functional"
)

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// TypedCodec provides generic type-safe encoding/decoding operations.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// Encode encodes value to YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes YAML to value.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// EncodeResult encodes and returns Result for functional error handling.
func EncodeResult[T any](codec TypedCodec[T], v T) functional.Result[[]byte] {
	data, err := codec.Encode(v)
	if err != nil {
		return functional.Err[[]byte](err)
	}
	return functional.Ok(data)
}

// DecodeResult decodes and returns Result for functional error handling.
func DecodeResult[T any](codec TypedCodec[T], data []byte) functional.Result[T] {
	v, err := codec.Decode(data)
	if err != nil {
		return functional.Err[T](err)
	}
	return functional.Ok(v)
}

// EncodeJSON is a convenience function for JSON encoding.
func EncodeJSON(v any) ([]byte, error) {
	return NewJSONCodec().Encode(v)
}

// DecodeJSON is a convenience function for JSON decoding.
func DecodeJSON[T any](data []byte) (T, error) {
	var v T
	err := NewJSONCodec().Decode(data, &v)
	return v, err
}

// EncodeYAML is a convenience function for YAML encoding.
func EncodeYAML(v any) ([]byte, error) {
	return NewYAMLCodec().Encode(v)
}

// DecodeYAML is a convenience function for YAML decoding.
func DecodeYAML[T any](data []byte) (T, error) {
	var v T
	err := NewYAMLCodec().Decode(data, &v)
	return v, err
}
