package codec

import (
	"encoding/json"

	"github.com/logistics-platform/libs/go/measures/measure"
	"github.com/logistics-platform/libs/go/measures/response"
)

// Quantity codecs. Encoding defers to each type's canonical-unit
// MarshalJSON; decoding goes through the options-aware entry points so
// a caller-supplied naming policy and case flag apply.

// DistanceCodec is the TypedCodec for measure.Distance.
type DistanceCodec struct {
	Options measure.DecodeOptions
}

func (c DistanceCodec) Encode(d measure.Distance) ([]byte, error) {
	return json.Marshal(d)
}

func (c DistanceCodec) Decode(data []byte) (measure.Distance, error) {
	return measure.DecodeDistance(data, c.Options)
}

// WeightCodec is the TypedCodec for measure.Weight.
type WeightCodec struct {
	Options measure.DecodeOptions
}

func (c WeightCodec) Encode(w measure.Weight) ([]byte, error) {
	return json.Marshal(w)
}

func (c WeightCodec) Decode(data []byte) (measure.Weight, error) {
	return measure.DecodeWeight(data, c.Options)
}

// VolumeCodec is the TypedCodec for measure.Volume.
type VolumeCodec struct {
	Options measure.DecodeOptions
}

func (c VolumeCodec) Encode(v measure.Volume) ([]byte, error) {
	return json.Marshal(v)
}

func (c VolumeCodec) Decode(data []byte) (measure.Volume, error) {
	return measure.DecodeVolume(data, c.Options)
}

// TemperatureCodec is the TypedCodec for measure.Temperature.
type TemperatureCodec struct {
	Options measure.DecodeOptions
}

func (c TemperatureCodec) Encode(t measure.Temperature) ([]byte, error) {
	return json.Marshal(t)
}

func (c TemperatureCodec) Decode(data []byte) (measure.Temperature, error) {
	return measure.DecodeTemperature(data, c.Options)
}

// ResponseCodec is the TypedCodec for response.Response.
type ResponseCodec struct{}

func (ResponseCodec) Encode(r response.Response) ([]byte, error) {
	return json.Marshal(r)
}

func (ResponseCodec) Decode(data []byte) (response.Response, error) {
	var r response.Response
	err := json.Unmarshal(data, &r)
	return r, err
}

// DefaultRegistry returns a registry with every library type bound to
// its default-options codec.
func DefaultRegistry() *Registry {
	opts := measure.DefaultDecodeOptions()
	r := NewRegistry()
	Register[measure.Distance](r, DistanceCodec{Options: opts})
	Register[measure.Weight](r, WeightCodec{Options: opts})
	Register[measure.Volume](r, VolumeCodec{Options: opts})
	Register[measure.Temperature](r, TemperatureCodec{Options: opts})
	Register[response.Response](r, ResponseCodec{})
	return r
}
